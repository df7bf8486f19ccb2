package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/qa-labs/e2e-suite/internal/suite"
	"github.com/sirupsen/logrus"
)

// RunOptions configures RunSuite.
type RunOptions struct {
	suite.Options
	// Combine regenerates the combined report after the run, pass or fail.
	Combine bool
}

// RunSuite runs the features in a browser and optionally combines all results afterwards.
func RunSuite(ctx context.Context, log logrus.FieldLogger, cfg *config.Config, opts RunOptions) error {
	result, runErr := suite.Run(ctx, log, cfg, opts.Options)
	if result != nil {
		fmt.Printf("\n%d scenarios, %d failed\nResults written to %s\n", result.Total, result.Failed, result.ResultsPath)
	}

	if runErr != nil && !errors.Is(runErr, suite.ErrSuiteFailed) {
		return runErr
	}

	if opts.Combine {
		if _, err := Combine(log, CombineOptions{ReportsDir: cfg.ReportsDir, Summary: true}); err != nil {
			return errors.Join(runErr, err)
		}
	}

	return runErr
}
