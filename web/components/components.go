package components

import (
	"strings"

	"signature_builder_echo/internal/clipboard"
)

// Element ids shared by the page, the fragments and app.js.
const (
	PreviewSlotID  = "preview-slot"
	CampusSelectID = "campus-select"
	AddressFieldID = "address-field"
	ToastID        = "toast"
	InstructionsID = "instructions"
)

// ErrorPageProps describes an error screen.
type ErrorPageProps struct {
	Code         int
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

func backText(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Back"
	}
	return text
}

// plainText is the text/plain half of the clipboard item for the markup.
func plainText(signatureHTML string) string {
	text, _ := clipboard.SignatureItem(signatureHTML).Get(clipboard.MIMEText)
	return text
}
