package suite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/qa-labs/e2e-suite/internal/pages"
	"github.com/sirupsen/logrus"
)

// ErrNoSession is returned by a step that runs without an open browser.
var ErrNoSession = errors.New("no browser session for scenario")

// Steps holds the generic browser step definitions.
type Steps struct {
	log     logrus.FieldLogger
	baseURL string
	timeout time.Duration
}

// NewSteps creates the step definitions. Relative URLs resolve against baseURL.
func NewSteps(log logrus.FieldLogger, baseURL string, timeout time.Duration) *Steps {
	return &Steps{
		log:     log.WithField("component", "steps"),
		baseURL: baseURL,
		timeout: timeout,
	}
}

// Register binds the step expressions.
func (s *Steps) Register(ctx *godog.ScenarioContext) {
	ctx.Step(`^I (?:navigate to|open) "([^"]*)"$`, s.navigate)
	ctx.Step(`^I click "([^"]*)"$`, s.click)
	ctx.Step(`^I fill "([^"]*)" with "([^"]*)"$`, s.fill)
	ctx.Step(`^I wait for "([^"]*)"$`, s.waitFor)
	ctx.Step(`^"([^"]*)" should be visible$`, s.shouldBeVisible)
	ctx.Step(`^"([^"]*)" should not be visible$`, s.shouldNotBeVisible)
	ctx.Step(`^"([^"]*)" should contain text "([^"]*)"$`, s.shouldContainText)
	ctx.Step(`^the page title should contain "([^"]*)"$`, s.titleShouldContain)
}

func (s *Steps) page(ctx context.Context) (*pages.BasePage, error) {
	session, ok := SessionFrom(ctx)
	if !ok || session.Page() == nil {
		return nil, ErrNoSession
	}
	return pages.NewBasePage(s.log, session.Page(), s.baseURL, s.timeout), nil
}

func (s *Steps) navigate(ctx context.Context, target string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}
	return page.NavigateTo(target)
}

func (s *Steps) click(ctx context.Context, selector string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}
	return page.Click(selector)
}

func (s *Steps) fill(ctx context.Context, selector, text string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}
	return page.Fill(selector, text)
}

func (s *Steps) waitFor(ctx context.Context, selector string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}
	return page.WaitFor(selector, 0)
}

func (s *Steps) shouldBeVisible(ctx context.Context, selector string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}

	return page.WaitFor(selector, 0)
}

func (s *Steps) shouldNotBeVisible(ctx context.Context, selector string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}

	visible, err := page.IsVisible(selector)
	if err != nil {
		return err
	}

	if visible {
		return fmt.Errorf("expected %s to be hidden", selector)
	}

	return nil
}

func (s *Steps) shouldContainText(ctx context.Context, selector, expected string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}

	text, err := page.Text(selector)
	if err != nil {
		return err
	}

	if !strings.Contains(text, expected) {
		return fmt.Errorf("expected %s to contain %q, got %q", selector, expected, text)
	}

	return nil
}

func (s *Steps) titleShouldContain(ctx context.Context, expected string) error {
	page, err := s.page(ctx)
	if err != nil {
		return err
	}

	title, err := page.Title()
	if err != nil {
		return err
	}

	if !strings.Contains(title, expected) {
		return fmt.Errorf("expected page title to contain %q, got %q", expected, title)
	}

	return nil
}
