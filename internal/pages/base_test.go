package pages

import (
	"errors"
	"testing"

	"github.com/playwright-community/playwright-go"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// locator avoids a field named Locator clashing with the Locator method.
type locator = playwright.Locator

type fakeLocator struct {
	locator
	selector string
	page     *fakePage
}

func (l *fakeLocator) err() error { return l.page.failing[l.selector] }

func (l *fakeLocator) First() playwright.Locator { return l }

func (l *fakeLocator) Click(_ ...playwright.LocatorClickOptions) error {
	if err := l.err(); err != nil {
		return err
	}
	l.page.clicked = append(l.page.clicked, l.selector)
	return nil
}

func (l *fakeLocator) Fill(value string, _ ...playwright.LocatorFillOptions) error {
	if err := l.err(); err != nil {
		return err
	}
	l.page.filled[l.selector] = value
	return nil
}

func (l *fakeLocator) Check(_ ...playwright.LocatorCheckOptions) error {
	if err := l.err(); err != nil {
		return err
	}
	if !l.page.stuck[l.selector] {
		l.page.checked[l.selector] = true
	}
	return nil
}

func (l *fakeLocator) IsChecked(_ ...playwright.LocatorIsCheckedOptions) (bool, error) {
	return l.page.checked[l.selector], l.err()
}

func (l *fakeLocator) SelectOption(values playwright.SelectOptionValues, _ ...playwright.LocatorSelectOptionOptions) ([]string, error) {
	if err := l.err(); err != nil {
		return nil, err
	}
	l.page.selected[l.selector] = *values.Labels
	return *values.Labels, nil
}

func (l *fakeLocator) InputValue(_ ...playwright.LocatorInputValueOptions) (string, error) {
	return l.page.values[l.selector], l.err()
}

func (l *fakeLocator) IsDisabled(_ ...playwright.LocatorIsDisabledOptions) (bool, error) {
	return l.page.disabled[l.selector], l.err()
}

func (l *fakeLocator) TextContent(_ ...playwright.LocatorTextContentOptions) (string, error) {
	return l.page.texts[l.selector], l.err()
}

func (l *fakeLocator) IsVisible(_ ...playwright.LocatorIsVisibleOptions) (bool, error) {
	return l.page.texts[l.selector] != "" || l.page.shown[l.selector], l.err()
}

func (l *fakeLocator) WaitFor(_ ...playwright.LocatorWaitForOptions) error {
	l.page.waited = append(l.page.waited, l.selector)
	return l.err()
}

type fakePage struct {
	playwright.Page
	url      string
	visited  []string
	clicked  []string
	waited   []string
	filled   map[string]string
	texts    map[string]string
	values   map[string]string
	checked  map[string]bool
	stuck    map[string]bool
	shown    map[string]bool
	disabled map[string]bool
	selected map[string][]string
	failing  map[string]error
	gotoErr  error
	script   any
}

func newFakePage() *fakePage {
	return &fakePage{
		filled:   map[string]string{},
		texts:    map[string]string{},
		values:   map[string]string{},
		checked:  map[string]bool{},
		stuck:    map[string]bool{},
		shown:    map[string]bool{},
		disabled: map[string]bool{},
		selected: map[string][]string{},
		failing:  map[string]error{},
	}
}

func (p *fakePage) Locator(selector string, _ ...playwright.PageLocatorOptions) playwright.Locator {
	return &fakeLocator{selector: selector, page: p}
}

func (p *fakePage) Goto(url string, _ ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.visited = append(p.visited, url)
	p.url = url
	return nil, p.gotoErr
}

func (p *fakePage) URL() string {
	return p.url
}

func (p *fakePage) Evaluate(_ string, _ ...any) (any, error) {
	return p.script, nil
}

func (p *fakePage) Title() (string, error) {
	return "Sample App", nil
}

func newPage(t *testing.T, page *fakePage) *BasePage {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	return NewBasePage(log, page, "http://localhost:8080/app", 0)
}

func TestBasePage_Interactions(t *testing.T) {
	fake := newFakePage()
	fake.texts["#greeting"] = "Welcome back"

	page := newPage(t, fake)

	require.NoError(t, page.NavigateTo("/login"))
	require.NoError(t, page.Fill("#user", "alice"))
	require.NoError(t, page.Click("button[type=submit]"))

	text, err := page.Text("#greeting")
	require.NoError(t, err)
	assert.Equal(t, "Welcome back", text)

	visible, err := page.IsVisible("#greeting")
	require.NoError(t, err)
	assert.True(t, visible)

	title, err := page.Title()
	require.NoError(t, err)
	assert.Equal(t, "Sample App", title)

	assert.Equal(t, []string{"http://localhost:8080/app/login"}, fake.visited)
	assert.Equal(t, map[string]string{"#user": "alice"}, fake.filled)
	assert.Equal(t, []string{"button[type=submit]"}, fake.clicked)
}

func TestBasePage_ErrorsNameSelector(t *testing.T) {
	fake := newFakePage()
	fake.failing["#missing"] = errors.New("timeout 30000ms exceeded")

	page := newPage(t, fake)

	err := page.Click("#missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#missing")
	assert.Contains(t, err.Error(), "timeout 30000ms exceeded")
}

func TestBasePage_RedirectLoop(t *testing.T) {
	fake := newFakePage()
	fake.gotoErr = errors.New("net::ERR_TOO_MANY_REDIRECTS")

	err := newPage(t, fake).NavigateTo("https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect loop")
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, target, want string
	}{
		{base: "http://localhost:8080", target: "/login", want: "http://localhost:8080/login"},
		{base: "http://localhost:8080/app", target: "/login", want: "http://localhost:8080/app/login"},
		{base: "http://localhost:8080/app/", target: "forms?step=2", want: "http://localhost:8080/app/forms?step=2"},
		{base: "http://localhost:8080", target: "https://example.com/x", want: "https://example.com/x"},
		{base: "", target: "/relative", want: "/relative"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := ResolveURL(tt.base, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
