package export

import (
	"fmt"
	"path"
	"strings"
)

// PreviewTargetID is the DOM id of the region that gets rasterized.
const PreviewTargetID = "signature-preview"

// DefaultPixelRatio doubles the pixel density of the exported PNG.
const DefaultPixelRatio = 2

// ImageSpec tells the browser-side rasterizer what to capture and how to
// name the download.
type ImageSpec struct {
	TargetID   string  `json:"targetId"`
	PixelRatio float64 `json:"pixelRatio"`
	FileName   string  `json:"fileName"`
}

// NewImageSpec returns the PNG export parameters. An empty or unsafe file
// name falls back to "signature.png".
func NewImageSpec(fileName string) ImageSpec {
	return ImageSpec{
		TargetID:   PreviewTargetID,
		PixelRatio: DefaultPixelRatio,
		FileName:   ensureExt(cleanFileName(fileName, "signature.png"), ".png"),
	}
}

// Attachment is a downloadable rendition of the signature.
type Attachment struct {
	FileName    string
	ContentType string
	Body        []byte
}

// ContentDisposition is the header value that triggers a download.
func (a Attachment) ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=%q", a.FileName)
}

// HTMLAttachment wraps signature markup in a minimal document so it opens
// in a browser or imports into a mail client. The file name follows the
// PNG name with an .html extension.
func HTMLAttachment(imageFileName, signatureHTML string) Attachment {
	name := cleanFileName(imageFileName, "signature.png")
	name = strings.TrimSuffix(name, path.Ext(name)) + ".html"

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Email signature</title>\n</head>\n<body>\n")
	b.WriteString(signatureHTML)
	b.WriteString("\n</body>\n</html>\n")

	return Attachment{
		FileName:    name,
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(b.String()),
	}
}

func cleanFileName(name, fallback string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '"' {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return fallback
	}
	return name
}

func ensureExt(name, ext string) string {
	if strings.EqualFold(path.Ext(name), ext) {
		return name
	}
	return name + ext
}
