package pages

// Home page selectors.
const (
	HomePath     = "/index.html"
	homeHeading  = "h1"
	homeSubtitle = "h3"
)

// HomePage is the playground landing page.
type HomePage struct {
	*BasePage
}

// NewHomePage wraps base.
func NewHomePage(base *BasePage) *HomePage {
	return &HomePage{BasePage: base}
}

// Open navigates to the landing page.
func (p *HomePage) Open() error {
	return p.NavigateTo(HomePath)
}

// Heading returns the main heading text.
func (p *HomePage) Heading() (string, error) {
	return p.Text(homeHeading)
}

// Subtitle returns the text under the heading.
func (p *HomePage) Subtitle() (string, error) {
	return p.Text(homeSubtitle)
}
