// Package suite runs Gherkin features with godog against a fresh browser per scenario
// and records the outcome in the results.json format the report combiner reads.
package suite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/playwright-community/playwright-go"
	"github.com/qa-labs/e2e-suite/internal/browser"
	"github.com/sirupsen/logrus"
)

// Recorded statuses.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusPending = "pending"
)

// Session is the part of a browser session the hooks and steps use.
type Session interface {
	Page() playwright.Page
	Screenshot(dir, name string) (string, error)
	Close() error
}

// OpenFunc acquires a session for one scenario.
type OpenFunc func(ctx context.Context) (Session, error)

type sessionKey struct{}

type startKey struct{}

// SessionFrom returns the scenario's session.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok && s != nil
}

// Hooks acquires and releases the per-scenario browser and records results.
type Hooks struct {
	log            logrus.FieldLogger
	open           OpenFunc
	recorder       *Recorder
	features       *featureNames
	screenshotsDir string
	downloadsDir   string
	now            func() time.Time
}

// NewHooks creates the scenario lifecycle hooks.
func NewHooks(log logrus.FieldLogger, open OpenFunc, recorder *Recorder, screenshotsDir, downloadsDir string) *Hooks {
	return &Hooks{
		log:            log.WithField("component", "hooks"),
		open:           open,
		recorder:       recorder,
		features:       newFeatureNames(),
		screenshotsDir: screenshotsDir,
		downloadsDir:   downloadsDir,
		now:            time.Now,
	}
}

// Register installs the hooks on a scenario context.
func (h *Hooks) Register(ctx *godog.ScenarioContext) {
	ctx.Before(h.before)
	ctx.After(h.after)
}

func (h *Hooks) before(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
	ctx = context.WithValue(ctx, startKey{}, h.now())

	h.log.WithField("scenario", sc.Name).Info("Starting scenario")

	session, err := h.open(ctx)
	if err != nil {
		h.log.WithError(err).Error("Failed to initialize browser")
		return ctx, fmt.Errorf("failed to initialize browser: %w", err)
	}

	return context.WithValue(ctx, sessionKey{}, session), nil
}

func (h *Hooks) after(ctx context.Context, sc *godog.Scenario, scenarioErr error) (context.Context, error) {
	var (
		status = statusOf(scenarioErr)
		log    = h.log.WithFields(logrus.Fields{"scenario": sc.Name, "status": status})
		errs   []error
	)

	if err := browser.CleanDir(h.log, h.downloadsDir); err != nil {
		errs = append(errs, err)
	}

	session, ok := SessionFrom(ctx)
	if ok {
		if status == StatusFailed {
			if _, err := session.Screenshot(h.screenshotsDir, sc.Name); err != nil {
				log.WithError(err).Warn("failed to capture screenshot")
			}
		}

		if err := session.Close(); err != nil {
			log.WithError(err).Error("Error in cleanup")
			errs = append(errs, err)
		}
	}

	// A scenario whose cleanup failed is reported failed by godog too.
	if len(errs) > 0 && status == StatusPassed {
		status = StatusFailed
		log = log.WithField("status", status)
	}

	var duration float64
	if start, ok := ctx.Value(startKey{}).(time.Time); ok {
		duration = h.now().Sub(start).Seconds()
	}

	h.recorder.Record(h.features.Name(sc.Uri), ScenarioEntry{
		Name:     sc.Name,
		Status:   status,
		Tags:     tagNames(sc),
		Duration: duration,
	})

	log.WithField("duration", duration).Info("Scenario finished")

	return ctx, errors.Join(errs...)
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return StatusPassed
	case errors.Is(err, godog.ErrSkip):
		return StatusSkipped
	case errors.Is(err, godog.ErrPending):
		return StatusPending
	default:
		return StatusFailed
	}
}

func tagNames(sc *godog.Scenario) []string {
	tags := make([]string, 0, len(sc.Tags))
	for _, tag := range sc.Tags {
		tags = append(tags, strings.TrimPrefix(tag.Name, "@"))
	}
	return tags
}
