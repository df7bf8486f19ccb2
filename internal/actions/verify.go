package actions

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/qa-labs/e2e-suite/internal/browser"
	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/qa-labs/e2e-suite/internal/table"
	"github.com/qa-labs/e2e-suite/internal/verify"
	"github.com/sirupsen/logrus"
)

// SetupChecks returns the checks run by Verify for cfg.
func SetupChecks(cfg *config.Config, launch func(ctx context.Context, browser string) (string, error)) []verify.Check {
	return []verify.Check{
		verify.RuntimeGoVersionCheck(),
		verify.ModulesCheck(debug.ReadBuildInfo, verify.RequiredModules),
		verify.FileCheck("Environment config", cfg.Path),
		verify.WritableDirsCheck(cfg.ReportsDir, cfg.ScreenshotsDir, cfg.DownloadsDir, cfg.LogsDir),
		verify.BrowserCheck(cfg.Browser, launch),
	}
}

// Verify checks that the environment can run the suite and prints the results table.
func Verify(ctx context.Context, log logrus.FieldLogger, cfg *config.Config) error {
	verifier := verify.NewVerifier(log, SetupChecks(cfg, browser.CheckLaunch))

	results, err := verifier.Run(ctx)
	if results != nil {
		fmt.Println(table.NewChecksFormatter(log, table.NewRenderer(log)).Format(results))
	}

	return err
}
