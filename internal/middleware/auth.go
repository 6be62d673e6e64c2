package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"signature_builder_echo/internal/identity"
)

// RequireAuth returns a middleware that verifies Firebase session cookies
// and re-checks the account domain on every request
func RequireAuth(verifier identity.Verifier, gate identity.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Check if Firebase is initialized
			if verifier == nil {
				return c.Redirect(http.StatusTemporaryRedirect, "/login?error=auth_not_configured")
			}

			// Get the session cookie
			cookie, err := c.Cookie(identity.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusTemporaryRedirect, "/login")
			}

			// Verify the session cookie
			decodedToken, err := verifier.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid session, clear cookie and redirect
				c.SetCookie(identity.ExpiredSessionCookie())
				return c.Redirect(http.StatusTemporaryRedirect, "/login")
			}

			if gate.Check(decodedToken) != identity.StatusOK {
				c.SetCookie(identity.ExpiredSessionCookie())
				return c.Render(http.StatusForbidden, "denied.html", map[string]interface{}{
					"AllowedDomain": gate.Domain(),
				})
			}

			// Set user info in context for downstream handlers
			c.Set("userUID", decodedToken.UID)
			c.Set("userEmail", identity.EmailOf(decodedToken))
			if name := identity.NameOf(decodedToken); name != "" {
				c.Set("userName", name)
			}

			return next(c)
		}
	}
}
