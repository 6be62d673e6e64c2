package clipboard

import (
	"context"
	"errors"
	"fmt"

	"signature_builder_echo/internal/signature"
)

// MIME types carried by a clipboard item.
const (
	MIMEHTML = "text/html"
	MIMEText = "text/plain"
)

// ErrNoStrategy is reported when no writer in the chain is available.
var ErrNoStrategy = errors.New("clipboard: no strategy available")

// Representation is one rendition of the copied content.
type Representation struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Item is the content of one copy action in every rendition on offer.
type Item struct {
	Representations []Representation `json:"representations"`
}

// SignatureItem offers html as rich text plus its tag-stripped plain text.
func SignatureItem(html string) Item {
	return Item{Representations: []Representation{
		{MIMEType: MIMEHTML, Data: html},
		{MIMEType: MIMEText, Data: signature.PlainText(html)},
	}}
}

// Get returns the rendition for mimeType.
func (i Item) Get(mimeType string) (string, bool) {
	for _, r := range i.Representations {
		if r.MIMEType == mimeType {
			return r.Data, true
		}
	}
	return "", false
}

// Writer is one way of putting an item on the clipboard.
type Writer interface {
	// Name identifies the strategy in results and logs.
	Name() string
	// Available reports whether the strategy can run here at all.
	Available() bool
	Write(ctx context.Context, item Item) error
}

// Result describes the outcome of a copy. Strategy names the writer that
// succeeded; Err joins every failure seen on the way.
type Result struct {
	OK       bool
	Strategy string
	Err      error
}

// Copier tries its writers in order until one succeeds.
type Copier struct {
	writers []Writer
}

// NewCopier returns a copier over writers, most capable first.
func NewCopier(writers ...Writer) *Copier {
	return &Copier{writers: writers}
}

// Copy writes item with the first available writer that succeeds. A failing
// writer falls through to the next one.
func (c *Copier) Copy(ctx context.Context, item Item) Result {
	var errs []error
	tried := 0
	for _, w := range c.writers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if !w.Available() {
			continue
		}
		tried++
		if err := w.Write(ctx, item); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", w.Name(), err))
			continue
		}
		return Result{OK: true, Strategy: w.Name(), Err: errors.Join(errs...)}
	}
	if tried == 0 {
		errs = append(errs, ErrNoStrategy)
	}
	return Result{Err: errors.Join(errs...)}
}
