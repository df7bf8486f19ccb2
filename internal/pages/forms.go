package pages

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned for a form field the page object does not know.
var ErrUnknownField = errors.New("unknown form field")

const (
	formsLink            = "a[href='forms.html']"
	experienceInput      = "#exp"
	experienceShown      = "#exp_help"
	languagesShown       = "#check_validate"
	toolShown            = "#rad_validate"
	primarySkillDropdown = "#select_tool"
	primarySkillShown    = "#select_tool_validate"
	notesArea            = "#notes"
	notesShown           = "#area_notes_validate"
	commonSenseInput     = "#common_sense"
	salaryInput          = "#salary"
	cityInput            = "#validationCustom03"
	stateInput           = "#validationCustom04"
	zipInput             = "#validationCustom05"
	formTermsCheckbox    = "#invalidCheck"
	formSubmitButton     = "button[type='submit']"
)

var (
	languageCheckboxes = map[string]string{
		"Python":     "#check_python",
		"JavaScript": "#check_javascript",
	}

	toolRadios = map[string]string{
		"Selenium":   "#rad_selenium",
		"Protractor": "#rad_protractor",
	}

	validationMessages = map[string]string{
		"city":  "#invalid_city",
		"state": "#invalid_state",
		"zip":   "#invalid_zip",
		"terms": "#invalid_terms",
	}

	readOnlyFields = map[string]string{
		"Common Sense":   commonSenseInput,
		"Current Salary": salaryInput,
	}
)

// FormsPage covers the basic form controls section.
type FormsPage struct {
	*BasePage
}

// NewFormsPage wraps base.
func NewFormsPage(base *BasePage) *FormsPage {
	return &FormsPage{BasePage: base}
}

// OpenSection follows the Forms link from the landing page.
func (p *FormsPage) OpenSection() error {
	return p.Click(formsLink)
}

// EnterExperience types the years of automation experience.
func (p *FormsPage) EnterExperience(years string) error {
	return p.Fill(experienceInput, years)
}

// ExperienceShown is the echoed experience value.
func (p *FormsPage) ExperienceShown() (string, error) {
	return p.Text(experienceShown)
}

// SelectLanguages ticks each language checkbox and verifies it stayed checked.
func (p *FormsPage) SelectLanguages(languages []string) error {
	for _, lang := range languages {
		selector, ok := languageCheckboxes[lang]
		if !ok {
			return fmt.Errorf("%w: language %q", ErrUnknownField, lang)
		}

		if err := p.Check(selector); err != nil {
			return err
		}

		checked, err := p.IsChecked(selector)
		if err != nil {
			return err
		}
		if !checked {
			return fmt.Errorf("could not select %s checkbox", lang)
		}
	}

	return nil
}

// LanguagesShown is the echoed list of selected languages.
func (p *FormsPage) LanguagesShown() (string, error) {
	return p.Text(languagesShown)
}

// SelectTool picks the automation tool radio.
func (p *FormsPage) SelectTool(tool string) error {
	selector, ok := toolRadios[tool]
	if !ok {
		return fmt.Errorf("%w: tool %q", ErrUnknownField, tool)
	}
	return p.Check(selector)
}

// ToolShown is the echoed automation tool.
func (p *FormsPage) ToolShown() (string, error) {
	return p.Text(toolShown)
}

// SelectPrimarySkill picks skill from the primary skill dropdown.
func (p *FormsPage) SelectPrimarySkill(skill string) error {
	return p.SelectOption(primarySkillDropdown, skill)
}

// PrimarySkillShown is the echoed primary skill.
func (p *FormsPage) PrimarySkillShown() (string, error) {
	return p.Text(primarySkillShown)
}

// EnterNotes types into the notes area.
func (p *FormsPage) EnterNotes(text string) error {
	return p.Fill(notesArea, text)
}

// NotesShown is the echoed notes text.
func (p *FormsPage) NotesShown() (string, error) {
	return p.Text(notesShown)
}

// ReadOnlyValue returns the value of a read-only field by its label.
func (p *FormsPage) ReadOnlyValue(label string) (string, error) {
	selector, ok := readOnlyFields[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, label)
	}
	return p.Value(selector)
}

// SalaryDisabled reports whether the salary input is disabled.
func (p *FormsPage) SalaryDisabled() (bool, error) {
	return p.IsDisabled(salaryInput)
}

// FillValidationForm fills the non-empty address fields.
func (p *FormsPage) FillValidationForm(city, state, zip string) error {
	fields := [][2]string{{cityInput, city}, {stateInput, state}, {zipInput, zip}}

	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := p.Fill(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

// AcceptTerms ticks the terms checkbox.
func (p *FormsPage) AcceptTerms() error {
	return p.Check(formTermsCheckbox)
}

// Submit clicks the form's submit button.
func (p *FormsPage) Submit() error {
	return p.Click(formSubmitButton)
}

// ValidationMessage waits for and returns the trimmed message of field
// (city, state, zip or terms).
func (p *FormsPage) ValidationMessage(field string) (string, error) {
	selector, ok := validationMessages[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if err := p.WaitFor(selector, 0); err != nil {
		return "", err
	}

	text, err := p.Text(selector)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
