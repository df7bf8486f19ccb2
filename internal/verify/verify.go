// Package verify checks that the local environment can run the browser suite.
package verify

import (
	"context"
	"errors"
	"fmt"
	"go/version"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrChecksFailed is returned by Run when at least one check fails.
var ErrChecksFailed = errors.New("some setup checks failed")

// MinGoVersion is the oldest toolchain the suite is built and tested with.
const MinGoVersion = "go1.24"

// RequiredModules must be linked into the binary.
var RequiredModules = []string{
	"github.com/playwright-community/playwright-go",
	"github.com/cucumber/godog",
	"github.com/sirupsen/logrus",
	"github.com/spf13/cobra",
}

// Check is a single named verification. It returns a message on success.
type Check struct {
	Name string
	Run  func(ctx context.Context) (string, error)
}

// Result is the outcome of one check.
type Result struct {
	Name    string
	Passed  bool
	Message string
}

// Verifier runs checks concurrently.
type Verifier struct {
	log    logrus.FieldLogger
	checks []Check
}

// NewVerifier creates a new verifier
func NewVerifier(log logrus.FieldLogger, checks []Check) *Verifier {
	return &Verifier{
		log:    log.WithField("component", "verify"),
		checks: checks,
	}
}

// Run executes every check. Results keep the order of the checks.
func (v *Verifier) Run(ctx context.Context) ([]Result, error) {
	v.log.Info("Starting setup verification...")

	results := make([]Result, len(v.checks))
	g, gctx := errgroup.WithContext(ctx)

	for i, check := range v.checks {
		g.Go(func() error {
			msg, err := check.Run(gctx)
			if err != nil {
				results[i] = Result{Name: check.Name, Message: err.Error()}
				return nil
			}
			results[i] = Result{Name: check.Name, Passed: true, Message: msg}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		log := v.log.WithField("check", r.Name)
		if r.Passed {
			log.Info(r.Message)
			continue
		}
		failed++
		log.Error(r.Message)
	}

	if failed > 0 {
		v.log.WithField("failed", failed).Error("Some setup checks failed. Please review the logs above.")
		return results, fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, len(results))
	}

	v.log.Info("All setup checks passed successfully!")

	return results, nil
}

// GoVersionCheck compares goVersion with minVersion.
func GoVersionCheck(goVersion, minVersion string) Check {
	return Check{
		Name: "Go version",
		Run: func(context.Context) (string, error) {
			msg := fmt.Sprintf("Go version: %s", goVersion)

			ok, err := versionAtLeast(goVersion, minVersion)
			if err != nil {
				return "", fmt.Errorf("%s: %w", msg, err)
			}
			if !ok {
				return "", fmt.Errorf("%s is older than required %s", msg, minVersion)
			}

			return msg, nil
		},
	}
}

// RuntimeGoVersionCheck checks runtime.Version against MinGoVersion.
func RuntimeGoVersionCheck() Check {
	return GoVersionCheck(runtime.Version(), MinGoVersion)
}

// ModulesCheck verifies that every required module is listed in the build info.
func ModulesCheck(read func() (*debug.BuildInfo, bool), required []string) Check {
	return Check{
		Name: "Modules",
		Run: func(context.Context) (string, error) {
			info, ok := read()
			if !ok {
				return "", errors.New("build info not available")
			}

			installed := make(map[string]string, len(info.Deps))
			for _, dep := range info.Deps {
				modVersion := dep.Version
				if dep.Replace != nil {
					modVersion = dep.Replace.Version
				}
				installed[dep.Path] = modVersion
			}

			var (
				found   = make([]string, 0, len(required))
				missing = make([]string, 0)
			)

			for _, path := range required {
				modVersion, ok := installed[path]
				if !ok {
					missing = append(missing, path)
					continue
				}
				found = append(found, fmt.Sprintf("%s@%s", path, modVersion))
			}

			if len(missing) > 0 {
				return "", fmt.Errorf("not installed: %s", strings.Join(missing, ", "))
			}

			return strings.Join(found, ", "), nil
		},
	}
}

// FileCheck verifies that path exists and is a regular file.
func FileCheck(name, path string) Check {
	return Check{
		Name: name,
		Run: func(context.Context) (string, error) {
			info, err := os.Stat(path)
			if err != nil {
				return "", fmt.Errorf("%s: %w", path, err)
			}
			if !info.Mode().IsRegular() {
				return "", fmt.Errorf("%s is not a regular file", path)
			}
			return fmt.Sprintf("found %s", path), nil
		},
	}
}

// WritableDirsCheck creates each directory and a scratch file inside it.
func WritableDirsCheck(dirs ...string) Check {
	return Check{
		Name: "Output directories",
		Run: func(context.Context) (string, error) {
			for _, dir := range dirs {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return "", fmt.Errorf("creating %s: %w", dir, err)
				}

				scratch, err := os.CreateTemp(dir, ".write-check-*")
				if err != nil {
					return "", fmt.Errorf("%s is not writable: %w", dir, err)
				}

				name := scratch.Name()
				_ = scratch.Close()

				if err := os.Remove(name); err != nil {
					return "", fmt.Errorf("removing scratch file %s: %w", filepath.Base(name), err)
				}
			}

			return fmt.Sprintf("writable: %s", strings.Join(dirs, ", ")), nil
		},
	}
}

// BrowserCheck runs launch, typically browser.CheckLaunch, for the configured browser.
func BrowserCheck(browserName string, launch func(ctx context.Context, browser string) (string, error)) Check {
	return Check{
		Name: "Playwright browsers",
		Run: func(ctx context.Context) (string, error) {
			browserVersion, err := launch(ctx, browserName)
			if err != nil {
				return "", fmt.Errorf("checking browsers: %w", err)
			}
			return fmt.Sprintf("Browsers installed: %s %s", browserName, browserVersion), nil
		},
	}
}

// versionAtLeast compares Go toolchain versions. Development builds always pass.
func versionAtLeast(v, minVersion string) (bool, error) {
	if strings.HasPrefix(v, "devel") {
		return true, nil
	}

	// Drop experiment suffixes like " X:nocoverageredesign".
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}

	if !version.IsValid(v) {
		return false, fmt.Errorf("unrecognised Go version %q", v)
	}

	return version.Compare(v, minVersion) >= 0, nil
}
