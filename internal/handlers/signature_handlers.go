package handlers

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/clipboard"
	"signature_builder_echo/internal/export"
	"signature_builder_echo/internal/form"
	"signature_builder_echo/internal/signature"
	"signature_builder_echo/web/components"
)

// SignatureHandler serves the builder page and its fragments. It keeps no
// per-user state: every request carries the whole form.
type SignatureHandler struct {
	renderer  *signature.Renderer
	directory campus.Directory
}

// NewSignatureHandler creates a new SignatureHandler
func NewSignatureHandler(renderer *signature.Renderer, directory campus.Directory) *SignatureHandler {
	return &SignatureHandler{renderer: renderer, directory: directory}
}

func (h *SignatureHandler) state(values url.Values) *form.State {
	return form.FromValues(h.renderer.Brand(), h.directory, values)
}

func (h *SignatureHandler) postedState(c echo.Context) (*form.State, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	return h.state(values), nil
}

func (h *SignatureHandler) renderSignature(s *form.State) (string, error) {
	html, err := h.renderer.Render(s.Fields)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "Failed to render signature").SetInternal(err)
	}
	return html, nil
}

// Builder renders the full page. Query values prefill the form.
func (h *SignatureHandler) Builder(c echo.Context) error {
	s := h.state(c.QueryParams())
	html, err := h.renderSignature(s)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	fragments := map[string]templ.Component{
		"CampusSelect": components.CampusSelect(s.Campuses(), s.CampusLabel(), false),
		"AddressField": components.AddressField(s.Fields.Address),
		"Preview":      components.Preview(html),
		"Instructions": components.Instructions(s.Tab),
		"Toast":        components.Toast(s.Toast),
	}

	brand := h.renderer.Brand()
	data := map[string]interface{}{
		"Title":          brand.Name + " Email Signature Builder",
		"BrandName":      brand.Name,
		"Export":         export.NewImageSpec(brand.ExportFileName),
		"Fields":         s.Fields,
		"PreviewSlotID":  components.PreviewSlotID,
		"CampusSelectID": components.CampusSelectID,
		"AddressFieldID": components.AddressFieldID,
	}
	for key, component := range fragments {
		markup, err := templ.ToGoHTML(ctx, component)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page").SetInternal(err)
		}
		data[key] = markup
	}

	return c.Render(http.StatusOK, "builder.html", data)
}

// Preview re-renders the signature after a field edit and resyncs the
// campus selector with the address.
func (h *SignatureHandler) Preview(c echo.Context) error {
	s, err := h.postedState(c)
	if err != nil {
		return err
	}
	html, err := h.renderSignature(s)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, components.PreviewUpdate(html, s.Campuses(), s.CampusLabel()))
}

// Campus applies a campus selection. The chosen campus overwrites any
// address typed so far.
func (h *SignatureHandler) Campus(c echo.Context) error {
	s, err := h.postedState(c)
	if err != nil {
		return err
	}
	s.SelectCampus(c.FormValue(form.KeyCampus))

	html, err := h.renderSignature(s)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, components.CampusUpdate(s.Fields.Address, html))
}

// Copy returns the rich and plain renditions as JSON for scripted clients.
// The page itself copies from the preview region.
func (h *SignatureHandler) Copy(c echo.Context) error {
	s, err := h.postedState(c)
	if err != nil {
		return err
	}
	html, err := h.renderSignature(s)
	if err != nil {
		return err
	}

	item := clipboard.SignatureItem(html)
	payload := CopyPayload{}
	payload.HTML, _ = item.Get(clipboard.MIMEHTML)
	payload.Text, _ = item.Get(clipboard.MIMEText)
	return c.JSON(http.StatusOK, payload)
}

// Download sends the signature as a standalone HTML file.
func (h *SignatureHandler) Download(c echo.Context) error {
	s, err := h.postedState(c)
	if err != nil {
		return err
	}
	html, err := h.renderSignature(s)
	if err != nil {
		return err
	}

	att := export.HTMLAttachment(h.renderer.Brand().ExportFileName, html)
	if email := getStringFromContext(c, "userEmail"); email != "" {
		c.Logger().Infof("signature downloaded by %s", email)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, att.ContentDisposition())
	return c.Blob(http.StatusOK, att.ContentType, att.Body)
}

// Instructions switches the visible setup instructions tab.
func (h *SignatureHandler) Instructions(c echo.Context) error {
	tab := form.ParseTab(c.QueryParam(form.KeyTab))
	return render(c, http.StatusOK, components.Instructions(tab))
}

// Toast reports a copy outcome. Without a result it clears the slot.
func (h *SignatureHandler) Toast(c echo.Context) error {
	s := form.New(h.renderer.Brand(), h.directory)
	switch c.QueryParam("result") {
	case "ok":
		s.CopyFinished(true)
	case "failed":
		s.CopyFinished(false)
	}
	return render(c, http.StatusOK, components.Toast(s.Toast))
}

// Healthz answers liveness probes.
func Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
