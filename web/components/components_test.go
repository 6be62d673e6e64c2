package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/clipboard"
	"signature_builder_echo/internal/form"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestCampusSelect(t *testing.T) {
	campuses := []campus.Campus{
		{Label: campus.SentinelLabel},
		{Label: "Chicago NW (O'Hare), IL", Address: "5321 North Harlem Avenue, Chicago, IL"},
	}

	got := renderString(t, CampusSelect(campuses, "Chicago NW (O'Hare), IL", false))
	want := `<select class="input" id="campus-select" name="campus" hx-post="/campus" hx-trigger="change consume" hx-include="#signature-form" hx-target="#address-field" hx-swap="outerHTML">` +
		`<option value="— Select your campus —">— Select your campus —</option>` +
		`<option value="Chicago NW (O&#39;Hare), IL" selected>Chicago NW (O&#39;Hare), IL</option>` +
		`</select>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CampusSelect mismatch (-want +got):\n%s", diff)
	}

	oob := renderString(t, CampusSelect(campuses, campus.SentinelLabel, true))
	if !strings.Contains(oob, `hx-swap-oob="true"`) {
		t.Errorf("out-of-band select missing swap attribute:\n%s", oob)
	}
}

func TestAddressFieldEscapes(t *testing.T) {
	got := renderString(t, AddressField(`1 Main St</textarea><script>`))
	if strings.Contains(got, "<script>") {
		t.Errorf("address not escaped: %s", got)
	}
	if !strings.HasSuffix(got, "&lt;/textarea&gt;&lt;script&gt;</textarea>") {
		t.Errorf("unexpected field: %s", got)
	}
}

func TestPreviewKeepsSignatureMarkup(t *testing.T) {
	got := renderString(t, Preview(`<table><tr><td>Jane</td></tr></table>`))
	want := `<div id="signature-preview" data-plain-text="Jane"><table><tr><td>Jane</td></tr></table></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Preview mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewCarriesPlainText(t *testing.T) {
	html := `<div>Jane &amp; Co</div><a href="mailto:jane@x.edu">jane@x.edu</a>`
	got := renderString(t, Preview(html))

	text, _ := clipboard.SignatureItem(html).Get(clipboard.MIMEText)
	if diff := cmp.Diff("Jane &amp; Cojane@x.edu", text); diff != "" {
		t.Fatalf("plain text (-want +got):\n%s", diff)
	}
	// the attribute is escaped once more so the browser reads back the text above
	if !strings.Contains(got, `data-plain-text="Jane &amp;amp; Cojane@x.edu"`) {
		t.Errorf("preview missing the plain-text rendition:\n%s", got)
	}
}

func TestCampusUpdate(t *testing.T) {
	got := renderString(t, CampusUpdate("1 Main St", "<p>sig</p>"))
	want := `<textarea class="input" rows="2" id="address-field" name="address">1 Main St</textarea>` +
		`<div id="preview-slot" hx-swap-oob="innerHTML"><div id="signature-preview" data-plain-text="sig"><p>sig</p></div></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CampusUpdate mismatch (-want +got):\n%s", diff)
	}
}

func TestToast(t *testing.T) {
	if got := renderString(t, Toast("")); got != `<div id="toast"></div>` {
		t.Errorf("empty toast = %q", got)
	}
	got := renderString(t, Toast(form.ToastCopied))
	if !strings.Contains(got, form.ToastCopied) || !strings.Contains(got, `hx-trigger="load delay:3s"`) {
		t.Errorf("toast = %q", got)
	}
}

func TestInstructionsMarksActiveTab(t *testing.T) {
	got := renderString(t, Instructions(form.TabOutlook))
	if !strings.Contains(got, `class="tab tab-active" hx-get="/instructions?tab=outlook"`) {
		t.Errorf("outlook tab not active:\n%s", got)
	}
	if !strings.Contains(got, "File → Options → Mail → Signatures…") {
		t.Errorf("outlook steps missing:\n%s", got)
	}
	if strings.Contains(got, "See all settings") {
		t.Error("gmail steps should be hidden")
	}
	if !strings.Contains(got, "<li>Go to <strong>Settings → View all Outlook settings</strong> or ") {
		t.Errorf("step emphasis should render as markup:\n%s", got)
	}
}

func TestInstructionsDefaultsToGmail(t *testing.T) {
	got := renderString(t, Instructions(form.TabGmail))
	if !strings.Contains(got, `class="tab tab-active" hx-get="/instructions?tab=gmail"`) {
		t.Errorf("gmail tab not active:\n%s", got)
	}
	if !strings.Contains(got, `<button type="button" class="tab" hx-get="/instructions?tab=outlook" hx-target="#instructions"`) {
		t.Errorf("outlook tab should be inactive:\n%s", got)
	}
	if !strings.Contains(got, "<li>Scroll to <strong>Signature</strong> → <strong>Create New</strong>.</li>") {
		t.Errorf("gmail steps missing:\n%s", got)
	}
}

func TestErrorPage(t *testing.T) {
	got := renderString(t, ErrorPage(ErrorPageProps{
		Code:         404,
		ErrorTitle:   "Page Not Found",
		ErrorMessage: "<gone>",
		BackLink:     "/",
	}))
	for _, want := range []string{"<title>Page Not Found</title>", "&lt;gone&gt;", "Error 404", `<a class="btn btn-primary" href="/">Back</a>`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
