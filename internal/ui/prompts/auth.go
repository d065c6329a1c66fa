package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cybank/internal/ui"
	"github.com/hance08/cybank/internal/validation"
)

type RegistrationInput struct {
	Username string
	Password string
	FullName string
	Email    string
}

// PromptRegistration collects the profile fields with huh and the password
// with a masked survey prompt.
func PromptRegistration() (RegistrationInput, error) {
	var in RegistrationInput

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username:").
				Description("Letters only, 3 to 20 characters").
				Validate(validation.ValidateUsername).
				Value(&in.Username),
			huh.NewInput().
				Title("Full name:").
				Validate(validation.ValidateFullName).
				Value(&in.FullName),
			huh.NewInput().
				Title("Email (optional):").
				Validate(validation.ValidateEmail).
				Value(&in.Email),
		),
	)
	if err := form.Run(); err != nil {
		return in, err
	}

	password, err := PromptPassword("Password:", true)
	if err != nil {
		return in, err
	}
	in.Password = password

	return in, nil
}

// PromptLogin asks for a username and a masked password.
func PromptLogin() (username, password string, err error) {
	err = huh.NewInput().
		Title("Username:").
		Value(&username).
		Run()
	if err != nil {
		return "", "", err
	}

	password, err = PromptPassword("Password:", false)
	return username, password, err
}

// PromptPassword reads a password without echo. With enforceRules set it also
// enforces the password rules.
func PromptPassword(message string, enforceRules bool) (string, error) {
	var password string

	opts := []survey.AskOpt{ui.IconOption()}
	if enforceRules {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validation.ValidatePassword(s)
		}))
	} else {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	err := survey.AskOne(&survey.Password{Message: message}, &password, opts...)
	return password, err
}
