package pages

import (
	"fmt"
	"strings"
)

const (
	registrationHeading = "h2"
	registerButton      = "#submit_button"
	registrationTerms   = "input[name='terms']"
	registrationMessage = "#message"
	confirmationSuffix  = "confirmation.html"
)

// registrationFields maps form labels to their inputs.
var registrationFields = map[string]string{
	"First Name":       "input[name='first_name']",
	"Last Name":        "input[name='last_name']",
	"Email":            "input[name='email']",
	"Password":         "#pwd1",
	"Confirm Password": "#pwd2",
}

// RegistrationPage is the new user sign-up form.
type RegistrationPage struct {
	*BasePage
}

// NewRegistrationPage wraps base.
func NewRegistrationPage(base *BasePage) *RegistrationPage {
	return &RegistrationPage{BasePage: base}
}

// Heading returns the page heading.
func (p *RegistrationPage) Heading() (string, error) {
	return p.Text(registrationHeading)
}

// FillField types value into the input labelled field.
func (p *RegistrationPage) FillField(field, value string) error {
	selector, ok := registrationFields[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return p.Fill(selector, value)
}

// AcceptTerms ticks the terms and privacy policy checkbox.
func (p *RegistrationPage) AcceptTerms() error {
	return p.Check(registrationTerms)
}

// Register submits the form.
func (p *RegistrationPage) Register() error {
	return p.Click(registerButton)
}

// ErrorMessage returns the form's error text.
func (p *RegistrationPage) ErrorMessage() (string, error) {
	return p.Text(registrationMessage)
}

// OnConfirmation reports whether registration landed on the confirmation page.
func (p *RegistrationPage) OnConfirmation() bool {
	return strings.HasSuffix(p.URL(), confirmationSuffix)
}
