package table

import (
	"fmt"

	"github.com/qa-labs/e2e-suite/internal/format"
	"github.com/qa-labs/e2e-suite/internal/report"
	"github.com/sirupsen/logrus"
)

// SummaryFormatter formats the aggregate counts of a combined report.
type SummaryFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *ColorHelper
}

// NewSummaryFormatter creates a new summary table formatter.
func NewSummaryFormatter(log logrus.FieldLogger, renderer Renderer) *SummaryFormatter {
	return &SummaryFormatter{
		log:      log.WithField("component", "table.summary_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the aggregate report counts into a formatted table string.
func (f *SummaryFormatter) Format(r *report.AggregateReport) string {
	passRate := r.PassRate()

	passedValue := fmt.Sprintf("%d (%s)", r.Passed, f.colors.FormatPercentage(passRate))
	if r.Total > 0 && r.Passed == r.Total {
		passedValue = f.colors.Success(fmt.Sprintf("%d (%.1f%%)", r.Passed, passRate))
	}

	failedValue := fmt.Sprintf("%d", r.Failed)
	if r.Failed > 0 {
		failedValue = f.colors.Failure(failedValue)
	} else {
		failedValue = f.colors.Success(failedValue)
	}

	skippedValue := fmt.Sprintf("%d", r.Skipped)
	if r.Skipped > 0 {
		skippedValue = f.colors.Warning(skippedValue)
	}

	return f.renderer.Render(Section{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Result Files", fmt.Sprintf("%d", r.Files)},
			{"Total Scenarios", f.colors.Bold(fmt.Sprintf("%d", r.Total))},
			{"Passed", passedValue},
			{"Failed", failedValue},
			{"Skipped", skippedValue},
			{"Run Duration", format.Duration(r.Duration())},
		},
	})
}
