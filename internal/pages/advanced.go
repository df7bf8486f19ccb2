package pages

import "strings"

const (
	advancedUILink    = "a[href='advanced.html']"
	ratingInput       = "#txt_rating"
	checkRatingButton = "#check_rating"
	ratingResult      = "#validate_rating"

	// The rating is only rendered in the label's ::after content.
	starRatingScript = `() => window.getComputedStyle(document.querySelector('label.star-rating'), ':after').getPropertyValue('content')`
)

// AdvancedUIPage is the star rating challenge.
type AdvancedUIPage struct {
	*BasePage
}

// NewAdvancedUIPage wraps base.
func NewAdvancedUIPage(base *BasePage) *AdvancedUIPage {
	return &AdvancedUIPage{BasePage: base}
}

// OpenSection follows the Advanced UI Features link.
func (p *AdvancedUIPage) OpenSection() error {
	return p.Click(advancedUILink)
}

// BookRating reads the star rating shown for the book.
func (p *AdvancedUIPage) BookRating() (string, error) {
	rating, err := p.EvaluateString(starRatingScript)
	if err != nil {
		return "", err
	}
	return strings.Trim(rating, `"`), nil
}

// EnterRating types rating into the answer box.
func (p *AdvancedUIPage) EnterRating(rating string) error {
	return p.Fill(ratingInput, rating)
}

// CheckRating submits the answer.
func (p *AdvancedUIPage) CheckRating() error {
	return p.Click(checkRatingButton)
}

// Result returns the verdict, "Well done!" or "Try again!".
func (p *AdvancedUIPage) Result() (string, error) {
	return p.Text(ratingResult)
}
