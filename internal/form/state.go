package form

import (
	"fmt"
	"net/url"
	"strings"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/signature"
)

// Tab is the email client whose setup instructions are visible.
type Tab string

const (
	TabGmail   Tab = "gmail"
	TabOutlook Tab = "outlook"
)

// ParseTab maps a query value to a Tab, falling back to Gmail.
func ParseTab(s string) Tab {
	if Tab(strings.ToLower(strings.TrimSpace(s))) == TabOutlook {
		return TabOutlook
	}
	return TabGmail
}

// Form input names. The builder page and FromValues share them.
const (
	KeyFullName     = "full_name"
	KeyTitle        = "title"
	KeyCampus       = "campus"
	KeyMobile       = "mobile"
	KeyEmail        = "email"
	KeyWebsite      = "website"
	KeyAddress      = "address"
	KeyLogoURL      = "logo_url"
	KeyHeadshotURL  = "headshot_url"
	KeyShowHeadshot = "show_headshot"
	KeyTab          = "tab"
)

// Toast messages shown after a copy attempt.
const (
	ToastCopied     = "✅ Signature copied to clipboard! Paste it into Gmail or Outlook."
	ToastCopyFailed = "Copy failed. Select the preview and copy it manually."
)

// State is everything the builder screen shows: the field record plus the
// small bits of UI state around it.
type State struct {
	Fields signature.Fields
	Tab    Tab
	Toast  string

	directory campus.Directory
}

// New returns the state at form mount.
func New(b signature.Brand, dir campus.Directory) *State {
	return &State{
		Fields:    signature.Defaults(b),
		Tab:       TabGmail,
		directory: dir,
	}
}

// Set applies one field edit. Unknown keys are rejected.
func (s *State) Set(key, value string) error {
	f := &s.Fields
	switch key {
	case KeyFullName:
		f.FullName = value
	case KeyTitle:
		f.Title = value
	case KeyCampus:
		s.SelectCampus(value)
	case KeyMobile:
		f.Mobile = value
	case KeyEmail:
		f.Email = value
	case KeyWebsite:
		f.Website = value
	case KeyAddress:
		f.Address = value
	case KeyLogoURL:
		f.LogoURL = value
	case KeyHeadshotURL:
		f.HeadshotURL = value
	case KeyShowHeadshot:
		f.ShowHeadshot = parseBool(value)
	case KeyTab:
		s.Tab = ParseTab(value)
	default:
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}

// SelectCampus records label and overwrites the address with that
// campus's canonical address. The sentinel and unknown labels clear it.
func (s *State) SelectCampus(label string) {
	s.Fields.Campus = label
	s.Fields.Address = s.directory.AddressFor(label)
}

// CopyFinished sets the toast for the outcome of a copy attempt.
func (s *State) CopyFinished(ok bool) {
	if ok {
		s.Toast = ToastCopied
		return
	}
	s.Toast = ToastCopyFailed
}

// CampusLabel is the label the selector should display for the current
// address. Manual edits that match no campus show the sentinel.
func (s *State) CampusLabel() string {
	return s.directory.LabelFor(s.Fields.Address)
}

// Campuses returns the selector entries.
func (s *State) Campuses() []campus.Campus {
	return s.directory.Entries()
}

// FromValues rebuilds a state from submitted form values. Keys that are
// absent keep their mount defaults, except the headshot checkbox which
// browsers omit when unchecked. The campus key is applied before the
// address so an explicit address always wins.
func FromValues(b signature.Brand, dir campus.Directory, values url.Values) *State {
	s := New(b, dir)

	if values.Has(KeyCampus) && !values.Has(KeyAddress) {
		s.SelectCampus(values.Get(KeyCampus))
	}
	for _, key := range []string{
		KeyFullName, KeyTitle, KeyMobile, KeyEmail, KeyWebsite,
		KeyAddress, KeyLogoURL, KeyHeadshotURL, KeyTab,
	} {
		if values.Has(key) {
			_ = s.Set(key, values.Get(key))
		}
	}
	if values.Has(KeyFullName) {
		s.Fields.ShowHeadshot = parseBool(values.Get(KeyShowHeadshot))
	}
	s.Fields.Campus = s.CampusLabel()
	return s
}

// Values is the inverse of FromValues.
func (s *State) Values() url.Values {
	f := s.Fields
	v := url.Values{}
	v.Set(KeyFullName, f.FullName)
	v.Set(KeyTitle, f.Title)
	v.Set(KeyCampus, s.CampusLabel())
	v.Set(KeyMobile, f.Mobile)
	v.Set(KeyEmail, f.Email)
	v.Set(KeyWebsite, f.Website)
	v.Set(KeyAddress, f.Address)
	v.Set(KeyLogoURL, f.LogoURL)
	v.Set(KeyHeadshotURL, f.HeadshotURL)
	if f.ShowHeadshot {
		v.Set(KeyShowHeadshot, "on")
	}
	v.Set(KeyTab, string(s.Tab))
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
