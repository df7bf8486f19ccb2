package pages

import "fmt"

const (
	samplePagesLink  = "a[href='login.html'].btn-success"
	usernameField    = "input[placeholder='Username']"
	passwordField    = "input[placeholder='Password']"
	loginButton      = "button:has-text('Log in')"
	rememberMeOption = "input[type='checkbox']"
	registerLink     = "text=New user? Register!"

	pizzaForm          = "#pizza_order_form"
	pizzaFlavor        = "#select_flavor"
	pizzaQuantity      = "#quantity"
	addToCartButton    = "#submit_button"
	cartConfirmation   = "#added_message"
	quantityValidation = "#quantity_modal .modal-body"
)

var (
	loginFormElements = []string{usernameField, passwordField, loginButton, rememberMeOption, registerLink}

	pizzaSizes = map[string]string{
		"Large":  "#rad_large",
		"Medium": "#rad_medium",
		"Small":  "#rad_small",
	}

	pizzaSauces = map[string]string{
		"Marinara": "#rad_marinara",
		"Buffalo":  "#rad_buffalo",
		"Barbeque": "#rad_barbeque",
	}

	pizzaToppings = map[string]string{
		"Onions":      "#onions",
		"Green Olive": "#green_olive",
		"Tomatoes":    "#tomoto",
	}
)

// LoginPage is the sample login form.
type LoginPage struct {
	*BasePage
}

// NewLoginPage wraps base.
func NewLoginPage(base *BasePage) *LoginPage {
	return &LoginPage{BasePage: base}
}

// OpenSection follows the Sample Pages link from the landing page.
func (p *LoginPage) OpenSection() error {
	if err := p.WaitFor(samplePagesLink, 0); err != nil {
		return err
	}
	return p.Click(samplePagesLink)
}

// FormVisible reports whether every login form control is visible.
func (p *LoginPage) FormVisible() (bool, error) {
	for _, selector := range loginFormElements {
		visible, err := p.IsVisible(selector)
		if err != nil || !visible {
			return false, err
		}
	}
	return true, nil
}

// EnterUsername types the user name.
func (p *LoginPage) EnterUsername(username string) error {
	return p.Fill(usernameField, username)
}

// EnterPassword types the password.
func (p *LoginPage) EnterPassword(password string) error {
	return p.Fill(passwordField, password)
}

// RememberMe ticks the remember me option.
func (p *LoginPage) RememberMe() error {
	return p.Check(rememberMeOption)
}

// Submit clicks Log in.
func (p *LoginPage) Submit() error {
	return p.Click(loginButton)
}

// OpenRegistration follows the register link.
func (p *LoginPage) OpenRegistration() error {
	return p.Click(registerLink)
}

// PizzaPage is the order form shown after logging in.
type PizzaPage struct {
	*BasePage
}

// NewPizzaPage wraps base.
func NewPizzaPage(base *BasePage) *PizzaPage {
	return &PizzaPage{BasePage: base}
}

// FormVisible waits for the order form and reports whether it is usable.
func (p *PizzaPage) FormVisible() (bool, error) {
	if err := p.WaitFor(pizzaForm, 0); err != nil {
		return false, err
	}

	for _, selector := range []string{pizzaSizes["Large"], addToCartButton} {
		visible, err := p.IsVisible(selector)
		if err != nil || !visible {
			return false, err
		}
	}

	return true, nil
}

// SelectSize picks Large, Medium or Small.
func (p *PizzaPage) SelectSize(size string) error {
	return p.checkNamed(pizzaSizes, "size", size)
}

// SelectFlavor picks a flavor from the dropdown.
func (p *PizzaPage) SelectFlavor(flavor string) error {
	return p.SelectOption(pizzaFlavor, flavor)
}

// SelectSauce picks Marinara, Buffalo or Barbeque.
func (p *PizzaPage) SelectSauce(sauce string) error {
	return p.checkNamed(pizzaSauces, "sauce", sauce)
}

// AddToppings ticks each topping.
func (p *PizzaPage) AddToppings(toppings []string) error {
	for _, topping := range toppings {
		if err := p.checkNamed(pizzaToppings, "topping", topping); err != nil {
			return err
		}
	}
	return nil
}

// EnterQuantity types the number of pizzas.
func (p *PizzaPage) EnterQuantity(quantity string) error {
	return p.Fill(pizzaQuantity, quantity)
}

// AddToCart submits the order.
func (p *PizzaPage) AddToCart() error {
	return p.Click(addToCartButton)
}

// Confirmation returns the added-to-cart message.
func (p *PizzaPage) Confirmation() (string, error) {
	if err := p.WaitFor(cartConfirmation, 0); err != nil {
		return "", err
	}
	return p.Text(cartConfirmation)
}

// QuantityError returns the quantity validation dialog text.
func (p *PizzaPage) QuantityError() (string, error) {
	if err := p.WaitFor(quantityValidation, 0); err != nil {
		return "", err
	}
	return p.Text(quantityValidation)
}

func (p *PizzaPage) checkNamed(options map[string]string, kind, name string) error {
	selector, ok := options[name]
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnknownField, kind, name)
	}
	return p.Check(selector)
}
