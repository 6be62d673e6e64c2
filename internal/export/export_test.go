package export

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewImageSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "brand file name", input: "tricoci-signature.png", expected: "tricoci-signature.png"},
		{name: "missing extension", input: "my-signature", expected: "my-signature.png"},
		{name: "upper case extension", input: "SIG.PNG", expected: "SIG.PNG"},
		{name: "empty", input: "", expected: "signature.png"},
		{name: "path stripped", input: "../../etc/sig.png", expected: "sig.png"},
		{name: "windows path stripped", input: `C:\tmp\sig.png`, expected: "sig.png"},
		{name: "quotes removed", input: `a"b.png`, expected: "ab.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := ImageSpec{TargetID: PreviewTargetID, PixelRatio: 2, FileName: tt.expected}
			if diff := cmp.Diff(want, NewImageSpec(tt.input)); diff != "" {
				t.Errorf("NewImageSpec(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestHTMLAttachment(t *testing.T) {
	a := HTMLAttachment("tricoci-signature.png", "<table><tr><td>Jane</td></tr></table>")

	if a.FileName != "tricoci-signature.html" {
		t.Errorf("FileName = %q", a.FileName)
	}
	if a.ContentType != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", a.ContentType)
	}
	body := string(a.Body)
	if !strings.HasPrefix(body, "<!DOCTYPE html>") || !strings.Contains(body, "<td>Jane</td>") {
		t.Errorf("unexpected body:\n%s", body)
	}
	if got := a.ContentDisposition(); got != `attachment; filename="tricoci-signature.html"` {
		t.Errorf("ContentDisposition = %q", got)
	}

	if got := HTMLAttachment("", "x").FileName; got != "signature.html" {
		t.Errorf("fallback FileName = %q", got)
	}
}
