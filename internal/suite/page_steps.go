package suite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/qa-labs/e2e-suite/internal/pages"
)

// ErrNoRating is returned when a rating is entered before one was read.
var ErrNoRating = errors.New("no star rating has been read in this scenario")

type ratingKey struct{}

// RegisterPages binds the playground page-object steps.
func (s *Steps) RegisterPages(ctx *godog.ScenarioContext) {
	// home
	ctx.Step(`^I navigate to the automation playground$`, s.openPlayground)
	ctx.Step(`^I should see the page title "([^"]*)"$`, s.homeHeadingIs)
	ctx.Step(`^I should see the subtitle "([^"]*)"$`, s.homeSubtitleIs)

	// forms
	ctx.Step(`^I click on Forms section$`, s.openForms)
	ctx.Step(`^I enter "([^"]*)" years of automation experience$`, s.enterExperience)
	ctx.Step(`^I should see the entered experience "([^"]*)" displayed$`, s.experienceShown)
	ctx.Step(`^I select the following programming languages$`, s.selectLanguages)
	ctx.Step(`^I should see selected languages "([^"]*)" displayed$`, s.languagesShown)
	ctx.Step(`^I select "([^"]*)" as the automation tool$`, s.selectTool)
	ctx.Step(`^I should see "([^"]*)" as selected tool$`, s.toolShown)
	ctx.Step(`^I select "([^"]*)" as primary skill$`, s.selectPrimarySkill)
	ctx.Step(`^I should see "([^"]*)" as selected primary skill$`, s.primarySkillShown)
	ctx.Step(`^I enter "([^"]*)" in the notes area$`, s.enterNotes)
	ctx.Step(`^I should see "([^"]*)" in notes validation$`, s.notesShown)
	ctx.Step(`^the "([^"]*)" field should be read-only with value "([^"]*)"$`, s.readOnlyValue)
	ctx.Step(`^the "Current Salary" field should be disabled$`, s.salaryDisabled)
	ctx.Step(`^I enter "([^"]*)" as (city|state|zip)$`, s.enterAddress)
	ctx.Step(`^I accept the terms and conditions$`, s.acceptFormTerms)
	ctx.Step(`^I click Submit Form$`, s.submitForm)
	ctx.Step(`^I should see "([^"]*)" validation for (city|state|zip|terms)$`, s.validationIs)

	// advanced ui
	ctx.Step(`^I click on Advanced UI Features section$`, s.openAdvancedUI)
	ctx.Step(`^I get the star rating for "([^"]*)"$`, s.readRating)
	ctx.Step(`^I enter the star rating in the text box$`, s.enterReadRating)
	ctx.Step(`^I enter (?:the|an incorrect) star rating "([^"]*)"$`, s.enterRating)
	ctx.Step(`^I click Check Rating button$`, s.checkRating)
	ctx.Step(`^I should see "([^"]*)" message$`, s.ratingResultIs)

	// registration
	ctx.Step(`^I fill in the registration form with following details$`, s.fillRegistration)
	ctx.Step(`^I accept the terms and privacy policy$`, s.acceptRegistrationTerms)
	ctx.Step(`^I click Register Now button$`, s.register)
	ctx.Step(`^I should be redirected to confirmation page$`, s.onConfirmation)
	ctx.Step(`^I should see the error message "([^"]*)"$`, s.registrationErrorIs)

	// sample pages
	ctx.Step(`^I click on the Sample Pages section$`, s.openSamplePages)
	ctx.Step(`^I should see the login form elements$`, s.loginFormVisible)
	ctx.Step(`^I fill in the username "([^"]*)"$`, s.enterUsername)
	ctx.Step(`^I fill in the password "([^"]*)"$`, s.enterPassword)
	ctx.Step(`^I check the Remember me option$`, s.rememberMe)
	ctx.Step(`^I click the Log in button$`, s.login)
	ctx.Step(`^I click on "New user\? Register!" link$`, s.openRegistration)
	ctx.Step(`^I should be redirected to the pizza order form$`, s.pizzaFormVisible)
	ctx.Step(`^I select "([^"]*)" pizza size$`, s.selectPizzaSize)
	ctx.Step(`^I select "([^"]*)" from pizza flavor dropdown$`, s.selectPizzaFlavor)
	ctx.Step(`^I select "([^"]*)" sauce$`, s.selectPizzaSauce)
	ctx.Step(`^I check the following toppings$`, s.addToppings)
	ctx.Step(`^I enter "([^"]*)" as the quantity$`, s.enterQuantity)
	ctx.Step(`^I click Add to Cart$`, s.addToCart)
	ctx.Step(`^I should see "([^"]*)" confirmation$`, s.cartConfirmationIs)
	ctx.Step(`^I should see the quantity validation message "([^"]*)"$`, s.quantityErrorIs)
}

// expectText compares a page value with the expected text.
func expectText(what, expected, actual string, err error) error {
	if err != nil {
		return err
	}
	if strings.TrimSpace(actual) != expected {
		return fmt.Errorf("expected %s %q, got %q", what, expected, actual)
	}
	return nil
}

func expectContains(what, expected, actual string, err error) error {
	if err != nil {
		return err
	}
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("expected %s to contain %q, got %q", what, expected, actual)
	}
	return nil
}

func expectTrue(what string, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("expected %s", what)
	}
	return nil
}

// column returns the first-column values of table, skipping the header row.
func column(table *godog.Table) []string {
	if table == nil || len(table.Rows) < 2 {
		return nil
	}

	values := make([]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) > 0 {
			values = append(values, row.Cells[0].Value)
		}
	}
	return values
}

// pairs returns the two-column rows of table. A "Field | Value" header row is skipped.
func pairs(table *godog.Table) ([][2]string, error) {
	if table == nil {
		return nil, nil
	}

	out := make([][2]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if len(row.Cells) != 2 {
			return nil, fmt.Errorf("row %d: want 2 cells, got %d", i+1, len(row.Cells))
		}
		if i == 0 && strings.EqualFold(row.Cells[0].Value, "field") {
			continue
		}
		out = append(out, [2]string{row.Cells[0].Value, row.Cells[1].Value})
	}
	return out, nil
}

func (s *Steps) home(ctx context.Context) (*pages.HomePage, error) {
	base, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return pages.NewHomePage(base), nil
}

func (s *Steps) forms(ctx context.Context) (*pages.FormsPage, error) {
	base, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return pages.NewFormsPage(base), nil
}

func (s *Steps) advanced(ctx context.Context) (*pages.AdvancedUIPage, error) {
	base, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return pages.NewAdvancedUIPage(base), nil
}

func (s *Steps) registration(ctx context.Context) (*pages.RegistrationPage, error) {
	base, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return pages.NewRegistrationPage(base), nil
}

func (s *Steps) loginPage(ctx context.Context) (*pages.LoginPage, error) {
	base, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return pages.NewLoginPage(base), nil
}

func (s *Steps) pizza(ctx context.Context) (*pages.PizzaPage, error) {
	base, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return pages.NewPizzaPage(base), nil
}

func (s *Steps) openPlayground(ctx context.Context) error {
	p, err := s.home(ctx)
	if err != nil {
		return err
	}
	return p.Open()
}

func (s *Steps) homeHeadingIs(ctx context.Context, expected string) error {
	p, err := s.home(ctx)
	if err != nil {
		return err
	}
	actual, err := p.Heading()
	return expectText("page title", expected, actual, err)
}

func (s *Steps) homeSubtitleIs(ctx context.Context, expected string) error {
	p, err := s.home(ctx)
	if err != nil {
		return err
	}
	actual, err := p.Subtitle()
	return expectText("subtitle", expected, actual, err)
}

func (s *Steps) openForms(ctx context.Context) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.OpenSection()
}

func (s *Steps) enterExperience(ctx context.Context, years string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.EnterExperience(years)
}

func (s *Steps) experienceShown(ctx context.Context, years string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	actual, err := p.ExperienceShown()
	return expectText("experience", years, actual, err)
}

func (s *Steps) selectLanguages(ctx context.Context, table *godog.Table) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.SelectLanguages(column(table))
}

func (s *Steps) languagesShown(ctx context.Context, expected string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	actual, err := p.LanguagesShown()
	return expectContains("selected languages", expected, actual, err)
}

func (s *Steps) selectTool(ctx context.Context, tool string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.SelectTool(tool)
}

func (s *Steps) toolShown(ctx context.Context, tool string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	actual, err := p.ToolShown()
	return expectContains("selected tool", tool, actual, err)
}

func (s *Steps) selectPrimarySkill(ctx context.Context, skill string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.SelectPrimarySkill(skill)
}

func (s *Steps) primarySkillShown(ctx context.Context, skill string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	actual, err := p.PrimarySkillShown()
	return expectContains("primary skill", skill, actual, err)
}

func (s *Steps) enterNotes(ctx context.Context, text string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.EnterNotes(text)
}

func (s *Steps) notesShown(ctx context.Context, text string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	actual, err := p.NotesShown()
	return expectContains("notes", text, actual, err)
}

func (s *Steps) readOnlyValue(ctx context.Context, field, expected string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	actual, err := p.ReadOnlyValue(field)
	return expectText(field, expected, actual, err)
}

func (s *Steps) salaryDisabled(ctx context.Context) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	disabled, err := p.SalaryDisabled()
	return expectTrue("Current Salary to be disabled", disabled, err)
}

func (s *Steps) enterAddress(ctx context.Context, value, field string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}

	switch field {
	case "city":
		return p.FillValidationForm(value, "", "")
	case "state":
		return p.FillValidationForm("", value, "")
	default:
		return p.FillValidationForm("", "", value)
	}
}

func (s *Steps) acceptFormTerms(ctx context.Context) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.AcceptTerms()
}

func (s *Steps) submitForm(ctx context.Context) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	return p.Submit()
}

func (s *Steps) validationIs(ctx context.Context, expected, field string) error {
	p, err := s.forms(ctx)
	if err != nil {
		return err
	}
	actual, err := p.ValidationMessage(field)
	return expectText(field+" validation", expected, actual, err)
}

func (s *Steps) openAdvancedUI(ctx context.Context) error {
	p, err := s.advanced(ctx)
	if err != nil {
		return err
	}
	return p.OpenSection()
}

func (s *Steps) readRating(ctx context.Context, book string) (context.Context, error) {
	p, err := s.advanced(ctx)
	if err != nil {
		return ctx, err
	}

	rating, err := p.BookRating()
	if err != nil {
		return ctx, err
	}

	s.log.WithField("book", book).WithField("rating", rating).Debug("Read book rating")

	return context.WithValue(ctx, ratingKey{}, rating), nil
}

func (s *Steps) enterReadRating(ctx context.Context) error {
	rating, ok := ctx.Value(ratingKey{}).(string)
	if !ok {
		return ErrNoRating
	}
	return s.enterRating(ctx, rating)
}

func (s *Steps) enterRating(ctx context.Context, rating string) error {
	p, err := s.advanced(ctx)
	if err != nil {
		return err
	}
	return p.EnterRating(rating)
}

func (s *Steps) checkRating(ctx context.Context) error {
	p, err := s.advanced(ctx)
	if err != nil {
		return err
	}
	return p.CheckRating()
}

func (s *Steps) ratingResultIs(ctx context.Context, expected string) error {
	p, err := s.advanced(ctx)
	if err != nil {
		return err
	}
	actual, err := p.Result()
	return expectText("rating result", expected, actual, err)
}

func (s *Steps) fillRegistration(ctx context.Context, table *godog.Table) error {
	p, err := s.registration(ctx)
	if err != nil {
		return err
	}

	rows, err := pairs(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := p.FillField(row[0], row[1]); err != nil {
			return err
		}
	}

	return nil
}

func (s *Steps) acceptRegistrationTerms(ctx context.Context) error {
	p, err := s.registration(ctx)
	if err != nil {
		return err
	}
	return p.AcceptTerms()
}

func (s *Steps) register(ctx context.Context) error {
	p, err := s.registration(ctx)
	if err != nil {
		return err
	}
	return p.Register()
}

func (s *Steps) onConfirmation(ctx context.Context) error {
	p, err := s.registration(ctx)
	if err != nil {
		return err
	}
	return expectTrue("to be on the confirmation page, at "+p.URL(), p.OnConfirmation(), nil)
}

func (s *Steps) registrationErrorIs(ctx context.Context, expected string) error {
	p, err := s.registration(ctx)
	if err != nil {
		return err
	}
	actual, err := p.ErrorMessage()
	return expectText("error message", expected, actual, err)
}

func (s *Steps) openSamplePages(ctx context.Context) error {
	p, err := s.loginPage(ctx)
	if err != nil {
		return err
	}
	return p.OpenSection()
}

func (s *Steps) loginFormVisible(ctx context.Context) error {
	p, err := s.loginPage(ctx)
	if err != nil {
		return err
	}
	visible, err := p.FormVisible()
	return expectTrue("login form elements to be visible", visible, err)
}

func (s *Steps) enterUsername(ctx context.Context, username string) error {
	p, err := s.loginPage(ctx)
	if err != nil {
		return err
	}
	return p.EnterUsername(username)
}

func (s *Steps) enterPassword(ctx context.Context, password string) error {
	p, err := s.loginPage(ctx)
	if err != nil {
		return err
	}
	return p.EnterPassword(password)
}

func (s *Steps) rememberMe(ctx context.Context) error {
	p, err := s.loginPage(ctx)
	if err != nil {
		return err
	}
	return p.RememberMe()
}

func (s *Steps) login(ctx context.Context) error {
	p, err := s.loginPage(ctx)
	if err != nil {
		return err
	}
	return p.Submit()
}

func (s *Steps) openRegistration(ctx context.Context) error {
	p, err := s.loginPage(ctx)
	if err != nil {
		return err
	}
	return p.OpenRegistration()
}

func (s *Steps) pizzaFormVisible(ctx context.Context) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	visible, err := p.FormVisible()
	return expectTrue("the pizza order form to be visible", visible, err)
}

func (s *Steps) selectPizzaSize(ctx context.Context, size string) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	return p.SelectSize(size)
}

func (s *Steps) selectPizzaFlavor(ctx context.Context, flavor string) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	return p.SelectFlavor(flavor)
}

func (s *Steps) selectPizzaSauce(ctx context.Context, sauce string) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	return p.SelectSauce(sauce)
}

func (s *Steps) addToppings(ctx context.Context, table *godog.Table) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	return p.AddToppings(column(table))
}

func (s *Steps) enterQuantity(ctx context.Context, quantity string) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	return p.EnterQuantity(quantity)
}

func (s *Steps) addToCart(ctx context.Context) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	return p.AddToCart()
}

func (s *Steps) cartConfirmationIs(ctx context.Context, expected string) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	actual, err := p.Confirmation()
	return expectText("cart confirmation", expected, actual, err)
}

func (s *Steps) quantityErrorIs(ctx context.Context, expected string) error {
	p, err := s.pizza(ctx)
	if err != nil {
		return err
	}
	actual, err := p.QuantityError()
	return expectText("quantity validation", expected, actual, err)
}
