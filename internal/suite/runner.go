package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/cucumber/godog"
	"github.com/qa-labs/e2e-suite/internal/browser"
	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/sirupsen/logrus"
)

// ErrSuiteFailed is returned when at least one scenario did not pass.
var ErrSuiteFailed = errors.New("test suite failed")

const labelTimestampFormat = "20060102-150405"

// Options selects what to run and where output goes.
type Options struct {
	Paths  []string
	Tags   string
	Format string
	// Label names the results subdirectory, <browser>-<timestamp> when empty.
	Label  string
	Output io.Writer
	// InstallBrowsers downloads playwright browsers before the first scenario.
	InstallBrowsers bool
}

// Result summarises a finished run.
type Result struct {
	Status      int
	ResultsPath string
	Total       int
	Failed      int
}

// Run executes the features and writes the run's results.json.
func Run(ctx context.Context, log logrus.FieldLogger, cfg *config.Config, opts Options) (*Result, error) {
	if len(opts.Paths) == 0 {
		opts.Paths = []string{"features"}
	}
	if opts.Format == "" {
		opts.Format = "pretty"
	}
	if opts.Label == "" {
		opts.Label = fmt.Sprintf("%s-%s", cfg.Browser, time.Now().Format(labelTimestampFormat))
	}

	if err := browser.EnsureDirs(cfg.ScreenshotsDir, cfg.DownloadsDir, cfg.ReportsDir); err != nil {
		return nil, err
	}

	launcher := browser.NewLauncher(log, browser.Options{
		Browser:         cfg.Browser,
		Headless:        cfg.Headless,
		SlowMo:          time.Duration(cfg.SlowMoMs) * time.Millisecond,
		Timeout:         time.Duration(cfg.TimeoutMs) * time.Millisecond,
		ViewportWidth:   cfg.Viewport.Width,
		ViewportHeight:  cfg.Viewport.Height,
		InstallBrowsers: opts.InstallBrowsers,
	})

	open := func(ctx context.Context) (Session, error) {
		s, err := launcher.Open(ctx)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	var (
		recorder = NewRecorder(log, nil)
		hooks    = NewHooks(log, open, recorder, cfg.ScreenshotsDir, cfg.DownloadsDir)
		steps    = NewSteps(log, cfg.BaseURL, time.Duration(cfg.TimeoutMs)*time.Millisecond)
	)

	suite := godog.TestSuite{
		Name: "e2e-suite",
		TestSuiteInitializer: func(tsc *godog.TestSuiteContext) {
			tsc.BeforeSuite(func() {
				log.WithField("env", cfg.Env).Info("Starting test execution")
			})
			tsc.AfterSuite(func() {
				log.Info("Test execution completed")
			})
		},
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			hooks.Register(sc)
			steps.Register(sc)
			steps.RegisterPages(sc)
		},
		Options: &godog.Options{
			Format:         opts.Format,
			Paths:          opts.Paths,
			Tags:           opts.Tags,
			Output:         opts.Output,
			Strict:         true,
			DefaultContext: ctx,
		},
	}

	recorder.Start()
	status := suite.Run()
	recorder.Finish()

	path, err := recorder.WriteFile(filepath.Join(cfg.ReportsDir, opts.Label))
	if err != nil {
		return nil, err
	}

	total, failed := recorder.Counts()
	result := &Result{Status: status, ResultsPath: path, Total: total, Failed: failed}

	if status != 0 {
		return result, fmt.Errorf("%w: godog exited with status %d", ErrSuiteFailed, status)
	}

	return result, nil
}
