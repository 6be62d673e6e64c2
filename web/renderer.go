package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
)

//go:embed templates static
var files embed.FS

// Templates returns the embedded template tree rooted at "templates".
func Templates() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the embedded asset tree rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// TemplateRenderer is a custom html/template renderer for Echo
// Uses per-page template cloning to allow each page to define its own blocks
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer creates a template renderer with per-page cloning
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	templates := make(map[string]*template.Template)

	// Parse base layout as the foundation
	baseTemplate, err := template.ParseFS(fsys, "layouts/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	// Find all page templates and clone base for each
	pages, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		pageName := path.Base(page)
		pageTemplate, err := baseTemplate.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := pageTemplate.ParseFS(fsys, page); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		templates[pageName] = pageTemplate
	}

	// Also parse standalone templates (like login) that don't use the base layout
	standalonePages, _ := fs.Glob(fsys, "*.html")
	for _, page := range standalonePages {
		pageName := path.Base(page)
		if _, exists := templates[pageName]; exists {
			continue
		}
		tmpl, err := template.ParseFS(fsys, page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		templates[pageName] = tmpl
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	// Pages with a "base" definition render through the layout
	if tmpl.Lookup("base") != nil {
		// Auto-inject user data from context if data is a map
		if dataMap, ok := data.(map[string]interface{}); ok {
			dataMap["UserEmail"] = c.Get("userEmail")
			dataMap["UserUID"] = c.Get("userUID")
		} else if data == nil {
			data = map[string]interface{}{
				"UserEmail": c.Get("userEmail"),
				"UserUID":   c.Get("userUID"),
			}
		}

		return tmpl.ExecuteTemplate(w, "base", data)
	}
	// Standalone template - execute directly
	return tmpl.Execute(w, data)
}
