package signature

import (
	"html/template"
	"strings"
)

// floorMarker keeps the suite/floor segment on the street line.
const floorMarker = "3rd floor"

const lineBreak = "<br/>"

// FormatAddress inserts line breaks into a comma separated mailing address.
//
//   - addresses containing "3rd floor" keep the first two segments on one
//     line and put the rest on the next
//   - three or more segments render as "street<br/>city, state"; segments
//     after the third are dropped
//   - anything shorter is returned unchanged
//
// The result is raw markup. Segment text is not escaped; use AddressHTML
// when the address comes from user input.
func FormatAddress(address string) string {
	return layoutAddress(address, func(s string) string { return s })
}

// AddressHTML is FormatAddress with every segment HTML-escaped, safe to
// embed in a template.
func AddressHTML(address string) template.HTML {
	return template.HTML(layoutAddress(address, template.HTMLEscapeString))
}

func layoutAddress(address string, esc func(string) string) string {
	if address == "" {
		return ""
	}

	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = esc(strings.TrimSpace(parts[i]))
	}

	if strings.Contains(address, floorMarker) {
		return segment(parts, 0) + ", " + segment(parts, 1) + lineBreak + strings.Join(tail(parts, 2), ", ")
	}
	if len(parts) >= 3 {
		return parts[0] + lineBreak + parts[1] + ", " + parts[2]
	}
	return esc(address)
}

func segment(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func tail(parts []string, from int) []string {
	if from >= len(parts) {
		return nil
	}
	return parts[from:]
}
