package actions

import (
	"fmt"
	"path/filepath"

	"github.com/qa-labs/e2e-suite/internal/report"
	"github.com/qa-labs/e2e-suite/internal/table"
	"github.com/sirupsen/logrus"
)

// CombineOptions configures Combine.
type CombineOptions struct {
	ReportsDir string
	Pattern    string
	OutputPath string
	// Summary prints the summary and results tables after writing the report.
	Summary bool
}

// Combine merges every results.json under the reports directory into one HTML report.
// The report goes next to the results unless OutputPath is set.
func Combine(log logrus.FieldLogger, opts CombineOptions) (*report.AggregateReport, error) {
	if opts.OutputPath == "" && opts.ReportsDir != "" {
		opts.OutputPath = filepath.Join(opts.ReportsDir, filepath.Base(report.DefaultOutputPath))
	}

	combiner, err := report.NewCombiner(log, report.Config{
		ReportsDir: opts.ReportsDir,
		Pattern:    opts.Pattern,
		OutputPath: opts.OutputPath,
	})
	if err != nil {
		return nil, err
	}

	agg, err := combiner.Run()
	if err != nil {
		return nil, err
	}

	if opts.Summary {
		renderer := table.NewRenderer(log)
		fmt.Println(table.NewSummaryFormatter(log, renderer).Format(agg))
		fmt.Println(table.NewResultsFormatter(log, renderer).Format(agg.Results))
	}

	fmt.Printf("Combined report generated: %s\n", combiner.OutputPath())

	return agg, nil
}
