// Command sigbuild renders an email signature from flags or an interactive
// questionnaire. The result goes to stdout, a file or the clipboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strconv"

	"signature_builder_echo/internal/clipboard"
	"signature_builder_echo/internal/config"
	"signature_builder_echo/internal/export"
	"signature_builder_echo/internal/form"
	"signature_builder_echo/internal/signature"
)

func main() {
	cfg := config.Load()
	err := run(context.Background(), os.Args[1:], cfg.BrandFile, os.Stdout, surveyPrompter{}, clipboard.SystemCopier())
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

// flagKeys maps command-line flags to form keys.
var flagKeys = []struct{ flag, key, usage string }{
	{"name", form.KeyFullName, "full name"},
	{"title", form.KeyTitle, "job title"},
	{"campus", form.KeyCampus, "campus label, fills the address"},
	{"email", form.KeyEmail, "work email"},
	{"mobile", form.KeyMobile, "mobile number"},
	{"website", form.KeyWebsite, "website text"},
	{"address", form.KeyAddress, "address, overrides -campus"},
	{"headshot", form.KeyHeadshotURL, "headshot image URL"},
}

func run(ctx context.Context, args []string, brandFile string, stdout io.Writer, prompter Prompter, copier *clipboard.Copier) error {
	fs := flag.NewFlagSet("sigbuild", flag.ContinueOnError)
	fs.SetOutput(stdout)

	values := make(map[string]*string, len(flagKeys))
	for _, f := range flagKeys {
		values[f.flag] = fs.String(f.flag, "", f.usage)
	}
	showHeadshot := fs.Bool("show-headshot", true, "include the headshot when a URL is set")
	brandPath := fs.String("brand", brandFile, "brand YAML file")
	interactive := fs.Bool("interactive", false, "ask for every field")
	copyOut := fs.Bool("copy", false, "copy the signature to the clipboard")
	outPath := fs.String("out", "", "write the signature to an HTML file")
	textOut := fs.Bool("text", false, "print the plain-text rendition")

	if err := fs.Parse(args); err != nil {
		return err
	}

	brand, directory, err := config.LoadBrand(*brandPath)
	if err != nil {
		return err
	}
	renderer, err := signature.NewRenderer(brand)
	if err != nil {
		return err
	}

	// Only flags given on the command line override the defaults
	submitted := url.Values{}
	fs.Visit(func(f *flag.Flag) {
		for _, fk := range flagKeys {
			if fk.flag == f.Name {
				submitted.Set(fk.key, f.Value.String())
			}
		}
	})
	submitted.Set(form.KeyShowHeadshot, strconv.FormatBool(*showHeadshot))
	if !submitted.Has(form.KeyFullName) {
		// keep the mount default name while honouring -show-headshot
		submitted.Set(form.KeyFullName, signature.DefaultFullName)
	}
	state := form.FromValues(renderer.Brand(), directory, submitted)

	if *interactive {
		if err := askFields(prompter, state); err != nil {
			return err
		}
	}

	html, err := renderer.Render(state.Fields)
	if err != nil {
		return err
	}

	wrote := false
	if *outPath != "" {
		att := export.HTMLAttachment(brand.ExportFileName, html)
		if err := os.WriteFile(*outPath, att.Body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", *outPath, err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		wrote = true
	}

	if *copyOut {
		res := copier.Copy(ctx, clipboard.SignatureItem(html))
		state.CopyFinished(res.OK)
		fmt.Fprintln(stdout, state.Toast)
		if !res.OK {
			return fmt.Errorf("copy: %w", res.Err)
		}
		if res.Err != nil {
			log.Printf("copied with %s after: %v", res.Strategy, res.Err)
		}
		wrote = true
	}

	switch {
	case *textOut:
		fmt.Fprintln(stdout, signature.PlainText(html))
	case !wrote:
		fmt.Fprintln(stdout, html)
	}
	return nil
}
