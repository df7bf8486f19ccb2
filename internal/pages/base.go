// Package pages provides the page-object base shared by step definitions.
package pages

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// BasePage wraps a playwright page with logged, error-wrapped helpers.
type BasePage struct {
	page    playwright.Page
	log     logrus.FieldLogger
	baseURL string
	timeout time.Duration
}

// NewBasePage creates a page object. timeout is the default for WaitFor.
func NewBasePage(log logrus.FieldLogger, page playwright.Page, baseURL string, timeout time.Duration) *BasePage {
	return &BasePage{
		page:    page,
		log:     log.WithField("component", "page"),
		baseURL: baseURL,
		timeout: timeout,
	}
}

// NavigateTo opens target, resolved against the base URL when relative.
func (p *BasePage) NavigateTo(target string) error {
	u, err := ResolveURL(p.baseURL, target)
	if err != nil {
		return err
	}

	p.log.WithField("url", u).Info("Navigating to URL")

	if _, err := p.page.Goto(u); err != nil {
		if strings.Contains(err.Error(), "ERR_TOO_MANY_REDIRECTS") {
			return fmt.Errorf("redirect loop navigating to %s: %w", u, err)
		}
		return fmt.Errorf("failed to navigate to %s: %w", u, err)
	}

	return nil
}

// Text returns the text content of the first element matching selector.
func (p *BasePage) Text(selector string) (string, error) {
	p.log.WithField("selector", selector).Debug("Getting text content from element")

	text, err := p.page.Locator(selector).First().TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to get text from element %s: %w", selector, err)
	}

	return text, nil
}

// Click clicks the first element matching selector.
func (p *BasePage) Click(selector string) error {
	p.log.WithField("selector", selector).Debug("Attempting to click element")

	if err := p.page.Locator(selector).First().Click(); err != nil {
		return fmt.Errorf("failed to click element %s: %w", selector, err)
	}

	return nil
}

// Fill types text into the input matching selector.
func (p *BasePage) Fill(selector, text string) error {
	p.log.WithField("selector", selector).Debug("Filling text field")

	if err := p.page.Locator(selector).First().Fill(text); err != nil {
		return fmt.Errorf("failed to fill text in element %s: %w", selector, err)
	}

	return nil
}

// IsVisible reports whether the first element matching selector is visible.
func (p *BasePage) IsVisible(selector string) (bool, error) {
	visible, err := p.page.Locator(selector).First().IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to check visibility of element %s: %w", selector, err)
	}

	p.log.WithFields(logrus.Fields{"selector": selector, "visible": visible}).Debug("Element visibility checked")

	return visible, nil
}

// WaitFor blocks until selector is visible. A zero timeout uses the page default.
func (p *BasePage) WaitFor(selector string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = p.timeout
	}

	p.log.WithFields(logrus.Fields{"selector": selector, "timeout": timeout}).Debug("Waiting for element")

	if err := p.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("timeout waiting for element %s: %w", selector, err)
	}

	return nil
}

// Title returns the document title.
func (p *BasePage) Title() (string, error) {
	title, err := p.page.Title()
	if err != nil {
		return "", fmt.Errorf("failed to read page title: %w", err)
	}
	return title, nil
}

// ResolveURL joins target onto base unless target is already absolute.
func ResolveURL(base, target string) (string, error) {
	t, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", target, err)
	}

	if t.IsAbs() || base == "" {
		return target, nil
	}

	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}

	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}

	return b.ResolveReference(&url.URL{
		Path:     strings.TrimPrefix(t.Path, "/"),
		RawQuery: t.RawQuery,
		Fragment: t.Fragment,
	}).String(), nil
}

// SelectOption picks the option with the given visible label.
func (p *BasePage) SelectOption(selector, label string) error {
	p.log.WithFields(logrus.Fields{"selector": selector, "option": label}).Debug("Selecting option")

	if _, err := p.page.Locator(selector).First().SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{label},
	}); err != nil {
		return fmt.Errorf("failed to select %q in %s: %w", label, selector, err)
	}

	return nil
}

// Check ticks a checkbox or radio button. Already checked inputs are left alone.
func (p *BasePage) Check(selector string) error {
	p.log.WithField("selector", selector).Debug("Checking input")

	if err := p.page.Locator(selector).First().Check(); err != nil {
		return fmt.Errorf("failed to check element %s: %w", selector, err)
	}

	return nil
}

// IsChecked reports whether the checkbox or radio matching selector is checked.
func (p *BasePage) IsChecked(selector string) (bool, error) {
	checked, err := p.page.Locator(selector).First().IsChecked()
	if err != nil {
		return false, fmt.Errorf("failed to read checked state of %s: %w", selector, err)
	}
	return checked, nil
}

// Value returns the current value of an input.
func (p *BasePage) Value(selector string) (string, error) {
	value, err := p.page.Locator(selector).First().InputValue()
	if err != nil {
		return "", fmt.Errorf("failed to read value of %s: %w", selector, err)
	}
	return value, nil
}

// IsDisabled reports whether the element matching selector is disabled.
func (p *BasePage) IsDisabled(selector string) (bool, error) {
	disabled, err := p.page.Locator(selector).First().IsDisabled()
	if err != nil {
		return false, fmt.Errorf("failed to read disabled state of %s: %w", selector, err)
	}
	return disabled, nil
}

// URL is the page's current address.
func (p *BasePage) URL() string {
	return p.page.URL()
}

// EvaluateString runs expression in the page and returns its result as a string.
func (p *BasePage) EvaluateString(expression string) (string, error) {
	result, err := p.page.Evaluate(expression)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate script: %w", err)
	}

	s, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("script returned %T, want string", result)
	}

	return s, nil
}
