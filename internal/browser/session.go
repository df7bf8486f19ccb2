// Package browser owns the playwright lifecycle: one browser, context and page per scenario.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// ErrUnknownBrowser is returned for a browser type playwright does not provide.
var ErrUnknownBrowser = errors.New("unknown browser type")

const screenshotTimestampFormat = "2006-01-02_15-04-05"

// Options configures the launched browser.
type Options struct {
	Browser        string
	Headless       bool
	SlowMo         time.Duration
	Timeout        time.Duration
	ViewportWidth  int
	ViewportHeight int
	// InstallBrowsers downloads the driver and browsers before the first launch.
	InstallBrowsers bool
}

// Launcher opens sessions.
type Launcher struct {
	log  logrus.FieldLogger
	opts Options
}

// NewLauncher creates a new session launcher
func NewLauncher(log logrus.FieldLogger, opts Options) *Launcher {
	return &Launcher{
		log:  log.WithField("component", "browser"),
		opts: opts,
	}
}

// Session is a running browser with a single page.
type Session struct {
	log     logrus.FieldLogger
	pw      stopper
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	now     func() time.Time
}

type stopper interface {
	Stop() error
}

// Open starts playwright and returns a session with a fresh page. Anything
// opened before a failure is released again.
func (l *Launcher) Open(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if l.opts.InstallBrowsers {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{l.opts.Browser}}); err != nil {
			return nil, fmt.Errorf("could not install playwright browsers: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	s := &Session{log: l.log, pw: pw, now: time.Now}

	if err := l.launch(pw, s); err != nil {
		if closeErr := s.Close(); closeErr != nil {
			l.log.WithError(closeErr).Warn("failed to release partially opened browser")
		}
		return nil, err
	}

	l.log.WithField("browser", l.opts.Browser).Info("Browser and page initialized successfully")

	return s, nil
}

func (l *Launcher) launch(pw *playwright.Playwright, s *Session) error {
	browserType, err := BrowserType(pw, l.opts.Browser)
	if err != nil {
		return err
	}

	s.browser, err = browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(l.opts.Headless),
		SlowMo:   playwright.Float(float64(l.opts.SlowMo.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("could not launch browser: %w", err)
	}

	s.context, err = s.browser.NewContext(playwright.BrowserNewContextOptions{
		AcceptDownloads: playwright.Bool(true),
		Viewport: &playwright.Size{
			Width:  l.opts.ViewportWidth,
			Height: l.opts.ViewportHeight,
		},
	})
	if err != nil {
		return fmt.Errorf("could not create context: %w", err)
	}

	s.page, err = s.context.NewPage()
	if err != nil {
		return fmt.Errorf("could not create page: %w", err)
	}

	if l.opts.Timeout > 0 {
		s.page.SetDefaultTimeout(float64(l.opts.Timeout.Milliseconds()))
	}

	return nil
}

// BrowserType picks the playwright browser type by name.
func BrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "", "chromium":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrowser, name)
	}
}

// Page is the session's page.
func (s *Session) Page() playwright.Page {
	return s.page
}

// Close releases page, context, browser and driver in that order. Every step is
// attempted; the errors are joined. Closing twice is a no-op.
func (s *Session) Close() error {
	var errs []error

	if s.page != nil {
		if err := s.page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing page: %w", err))
		}
		s.page = nil
	}

	if s.context != nil {
		if err := s.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing context: %w", err))
		}
		s.context = nil
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing browser: %w", err))
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stopping playwright: %w", err))
		}
		s.pw = nil
	}

	if len(errs) == 0 {
		s.log.Debug("Browser resources cleaned up")
	}

	return errors.Join(errs...)
}

// Screenshot stores a full-page PNG in dir and returns its path.
func (s *Session) Screenshot(dir, name string) (string, error) {
	if s.page == nil {
		return "", errors.New("session has no page")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot directory: %w", err)
	}

	path := ScreenshotPath(dir, name, s.now())

	if _, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("taking screenshot: %w", err)
	}

	s.log.WithField("path", path).Info("Screenshot captured")

	return path, nil
}

var unsafeFileChars = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")

// ScreenshotPath names the failure screenshot for a scenario taken at t.
func ScreenshotPath(dir, name string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("failure_%s_%s.png", unsafeFileChars.Replace(name), t.Format(screenshotTimestampFormat)))
}
