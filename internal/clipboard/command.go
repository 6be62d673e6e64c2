package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes name with args, feeding stdin.
type Runner func(ctx context.Context, name string, args []string, stdin string) error

// CommandWriter pipes one rendition of an item into a clipboard utility
// such as wl-copy, xclip or pbcopy.
type CommandWriter struct {
	name     string
	mimeType string
	argv     []string

	lookPath func(string) (string, error)
	run      Runner
}

// NewCommandWriter returns a writer that sends the mimeType rendition to
// argv on stdin.
func NewCommandWriter(name, mimeType string, argv ...string) *CommandWriter {
	return &CommandWriter{
		name:     name,
		mimeType: mimeType,
		argv:     argv,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// WithRunner replaces how the command is found and run.
func (w *CommandWriter) WithRunner(lookPath func(string) (string, error), run Runner) *CommandWriter {
	w.lookPath = lookPath
	w.run = run
	return w
}

func (w *CommandWriter) Name() string { return w.name }

func (w *CommandWriter) Available() bool {
	if len(w.argv) == 0 {
		return false
	}
	_, err := w.lookPath(w.argv[0])
	return err == nil
}

func (w *CommandWriter) Write(ctx context.Context, item Item) error {
	data, ok := item.Get(w.mimeType)
	if !ok {
		return fmt.Errorf("item has no %s rendition", w.mimeType)
	}
	return w.run(ctx, w.argv[0], w.argv[1:], data)
}

func runCommand(ctx context.Context, name string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// RichWriters copy the HTML rendition so rich-text editors paste it
// formatted.
func RichWriters() []Writer {
	return []Writer{
		NewCommandWriter("wl-copy (html)", MIMEHTML, "wl-copy", "--type", MIMEHTML),
		NewCommandWriter("xclip (html)", MIMEHTML, "xclip", "-selection", "clipboard", "-t", MIMEHTML),
	}
}

// PlainWriters copy the plain-text rendition.
func PlainWriters() []Writer {
	return []Writer{
		NewCommandWriter("pbcopy", MIMEText, "pbcopy"),
		NewCommandWriter("wl-copy", MIMEText, "wl-copy"),
		NewCommandWriter("xclip", MIMEText, "xclip", "-selection", "clipboard"),
		NewCommandWriter("clip", MIMEText, "clip.exe"),
	}
}

// SystemCopier tries rich writers first and falls back to plain ones.
func SystemCopier() *Copier {
	return NewCopier(append(RichWriters(), PlainWriters()...)...)
}
