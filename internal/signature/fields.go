package signature

// Fields is the flat record behind one signature. Every value is optional;
// an empty string means "not provided".
type Fields struct {
	FullName     string `json:"fullName" form:"full_name" yaml:"full_name"`
	Title        string `json:"title" form:"title" yaml:"title"`
	Campus       string `json:"campus" form:"campus" yaml:"campus"`
	Mobile       string `json:"mobile" form:"mobile" yaml:"mobile"`
	Email        string `json:"email" form:"email" yaml:"email"`
	Website      string `json:"website" form:"website" yaml:"website"`
	Address      string `json:"address" form:"address" yaml:"address"`
	LogoURL      string `json:"logoUrl" form:"logo_url" yaml:"logo_url"`
	HeadshotURL  string `json:"headshotUrl" form:"headshot_url" yaml:"headshot_url"`
	ShowHeadshot bool   `json:"showHeadshot" form:"show_headshot" yaml:"show_headshot"`
}

// Placeholder values shown when the form first loads.
const (
	DefaultFullName = "First Last"
	DefaultTitle    = "Your Title"
)

// Defaults returns the record the builder starts from.
func Defaults(b Brand) Fields {
	return Fields{
		FullName:     DefaultFullName,
		Title:        DefaultTitle,
		Website:      b.Website,
		LogoURL:      b.LogoURL,
		ShowHeadshot: true,
	}
}
