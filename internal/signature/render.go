package signature

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns Fields into signature markup for one Brand.
//
// Field values are escaped by html/template. The only unescaped markup is
// the brand tagline and disclaimer, which pass through SanitizeMarkup.
type Renderer struct {
	brand Brand
	tmpl  *template.Template
}

// NewRenderer parses the signature template for b. Empty brand fields are
// filled from DefaultBrand.
func NewRenderer(b Brand) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse signature template: %w", err)
	}
	return &Renderer{brand: b.WithDefaults(), tmpl: tmpl}, nil
}

// Brand returns the brand the renderer was built with.
func (r *Renderer) Brand() Brand {
	return r.brand
}

type view struct {
	BrandName  string
	LogoURL    string
	LogoWidth  int
	Tagline    template.HTML
	Disclaimer template.HTML
	WebsiteURL string
	Text       template.CSS
	Headline   template.CSS
	Classic    bool

	FullName    string
	Title       string
	Address     template.HTML
	Mobile      string
	MobileHref  string
	Email       string
	EmailHref   string
	Website     string
	HeadshotURL string
}

func (r *Renderer) view(f Fields) view {
	v := view{
		BrandName:  r.brand.Name,
		LogoURL:    r.brand.LogoURL,
		LogoWidth:  r.brand.LogoWidth,
		Tagline:    SanitizeMarkup(r.brand.Tagline),
		Disclaimer: SanitizeMarkup(r.brand.Disclaimer),
		WebsiteURL: r.brand.WebsiteURL,
		Text:       template.CSS(r.brand.TextColor),
		Headline:   template.CSS(r.brand.HeadlineColor),
		Classic:    r.brand.Layout == LayoutClassic,

		FullName: f.FullName,
		Title:    f.Title,
		Address:  AddressHTML(f.Address),
		Mobile:   f.Mobile,
		Email:    f.Email,
		Website:  f.Website,

		// any non-empty value shows its line, only the link target is trimmed
		MobileHref: strings.TrimSpace(f.Mobile),
		EmailHref:  strings.TrimSpace(f.Email),
	}
	if f.ShowHeadshot {
		v.HeadshotURL = strings.TrimSpace(f.HeadshotURL)
	}
	return v
}

// Render returns the signature block for f. The output is deterministic:
// the same Fields always produce byte-identical markup.
func (r *Renderer) Render(f Fields) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "signature", r.view(f)); err != nil {
		return "", fmt.Errorf("render signature: %w", err)
	}
	return buf.String(), nil
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// PlainText drops every "<...>" run from html. It does not decode entities
// or collapse whitespace, so it is only a rough text rendition.
func PlainText(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}
