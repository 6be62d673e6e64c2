package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"signature_builder_echo/internal/form"
)

// errAborted is returned when the user interrupts the questionnaire.
var errAborted = errors.New("aborted")

// Prompter asks the interactive questions. The survey implementation talks
// to the terminal; tests script the answers.
type Prompter interface {
	Input(message, def string) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options, PageSize: 10}
	for _, o := range options {
		if o == def {
			prompt.Default = def
			break
		}
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// askFields walks the form in page order, starting from the current
// values. Picking a campus fills the address, which can still be edited.
func askFields(p Prompter, s *form.State) error {
	inputs := []struct {
		key, message string
		value        *string
	}{
		{form.KeyFullName, "Full name", &s.Fields.FullName},
		{form.KeyTitle, "Title", &s.Fields.Title},
		{form.KeyEmail, "Work email", &s.Fields.Email},
		{form.KeyMobile, "Mobile (optional)", &s.Fields.Mobile},
		{form.KeyWebsite, "Website", &s.Fields.Website},
	}
	for _, in := range inputs {
		answer, err := p.Input(in.message, *in.value)
		if err != nil {
			return fmt.Errorf("%s: %w", in.key, err)
		}
		if err := s.Set(in.key, answer); err != nil {
			return err
		}
	}

	var labels []string
	for _, c := range s.Campuses() {
		labels = append(labels, c.Label)
	}
	label, err := p.Select("Primary campus", labels, s.CampusLabel())
	if err != nil {
		return fmt.Errorf("%s: %w", form.KeyCampus, err)
	}
	// reselecting still applies, so the sentinel clears a typed address
	s.SelectCampus(label)

	address, err := p.Input("Address", s.Fields.Address)
	if err != nil {
		return fmt.Errorf("%s: %w", form.KeyAddress, err)
	}
	s.Fields.Address = address

	headshot, err := p.Input("Headshot URL (optional)", s.Fields.HeadshotURL)
	if err != nil {
		return fmt.Errorf("%s: %w", form.KeyHeadshotURL, err)
	}
	s.Fields.HeadshotURL = headshot
	if headshot != "" {
		show, err := p.Confirm("Show headshot?", s.Fields.ShowHeadshot)
		if err != nil {
			return fmt.Errorf("%s: %w", form.KeyShowHeadshot, err)
		}
		s.Fields.ShowHeadshot = show
	}

	s.Fields.Campus = s.CampusLabel()
	return nil
}
