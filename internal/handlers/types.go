package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// CopyPayload is what the browser puts on the clipboard.
type CopyPayload struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// render writes a templ fragment with status.
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

func getStringFromContext(c echo.Context, key string) string {
	if v, ok := c.Get(key).(string); ok {
		return v
	}
	return ""
}

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
