package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// CheckLaunch checks that the playwright driver runs and that browser can be launched
// headless. It returns the browser version.
func CheckLaunch(ctx context.Context, browser string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pw, err := playwright.Run()
	if err != nil {
		return "", fmt.Errorf("playwright driver not available: %w", err)
	}

	browserType, err := BrowserType(pw, browser)
	if err != nil {
		return "", errors.Join(err, pw.Stop())
	}

	b, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{Headless: playwright.Bool(true)})
	if err != nil {
		return "", errors.Join(fmt.Errorf("launching %s: %w", browser, err), pw.Stop())
	}

	version := b.Version()

	if err := errors.Join(b.Close(), pw.Stop()); err != nil {
		return version, fmt.Errorf("closing launched browser: %w", err)
	}

	return version, nil
}
