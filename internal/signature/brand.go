package signature

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Layout selects where the tagline sits in the signature.
type Layout string

const (
	// LayoutModern puts the tagline under the logo.
	LayoutModern Layout = "modern"
	// LayoutClassic puts the tagline under the contact lines.
	LayoutClassic Layout = "classic"
)

// Brand holds the fixed parts of the signature template.
type Brand struct {
	Name           string `yaml:"name"`
	Tagline        string `yaml:"tagline"`
	Website        string `yaml:"website"`
	WebsiteURL     string `yaml:"website_url"`
	LogoURL        string `yaml:"logo_url"`
	LogoWidth      int    `yaml:"logo_width"`
	Disclaimer     string `yaml:"disclaimer"`
	PrimaryColor   string `yaml:"primary_color"`
	TextColor      string `yaml:"text_color"`
	HeadlineColor  string `yaml:"headline_color"`
	Layout         Layout `yaml:"layout"`
	ExportFileName string `yaml:"export_file_name"`
}

// Disclaimer is appended verbatim to every signature.
const Disclaimer = "This message and any accompanying document(s) contain information for the sole use of the above-intended recipient(s) and may contain privileged or confidential information. Any other distribution or use of this communication is strictly prohibited. Please notify this office immediately by return email if you are not the intended recipient and delete this message and any attachments."

// DefaultBrand returns the Tricoci University brand.
func DefaultBrand() Brand {
	return Brand{
		Name:           "Tricoci University",
		Tagline:        "CELEBRATING 20+ YEARS OF CHANGING LIVES",
		Website:        "www.tricociuniversity.edu",
		WebsiteURL:     "https://www.tricociuniversity.edu",
		LogoURL:        "https://www.tricociuniversity.edu/wp-content/uploads/2025/10/TUBC-Sig-Logo-4.png",
		LogoWidth:      220,
		Disclaimer:     Disclaimer,
		PrimaryColor:   "#0b5a46",
		TextColor:      "#111111",
		HeadlineColor:  "#8BC53F",
		Layout:         LayoutModern,
		ExportFileName: "tricoci-signature.png",
	}
}

// WithDefaults fills every empty field of b from DefaultBrand.
func (b Brand) WithDefaults() Brand {
	d := DefaultBrand()
	if b.Name == "" {
		b.Name = d.Name
	}
	if b.Tagline == "" {
		b.Tagline = d.Tagline
	}
	if b.Website == "" {
		b.Website = d.Website
	}
	if b.WebsiteURL == "" {
		b.WebsiteURL = d.WebsiteURL
	}
	if b.LogoURL == "" {
		b.LogoURL = d.LogoURL
	}
	if b.LogoWidth <= 0 {
		b.LogoWidth = d.LogoWidth
	}
	if b.Disclaimer == "" {
		b.Disclaimer = d.Disclaimer
	}
	if b.PrimaryColor == "" {
		b.PrimaryColor = d.PrimaryColor
	}
	if b.TextColor == "" {
		b.TextColor = d.TextColor
	}
	if b.HeadlineColor == "" {
		b.HeadlineColor = d.HeadlineColor
	}
	if b.Layout != LayoutClassic {
		b.Layout = LayoutModern
	}
	if b.ExportFileName == "" {
		b.ExportFileName = d.ExportFileName
	}
	return b
}

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SanitizeMarkup cleans operator supplied brand text (tagline, disclaimer)
// down to inline formatting so it can be embedded without escaping.
func SanitizeMarkup(raw string) template.HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return template.HTML(strings.TrimSpace(markupSanitizer().Sanitize(trimmed)))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "u", "br", "span", "small")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowElements("a")
		policy.AllowURLSchemes("https", "http", "mailto")
		policy.RequireNoFollowOnLinks(false)
		markupPolicy = policy
	})
	return markupPolicy
}
