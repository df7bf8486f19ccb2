package table

import (
	"fmt"
	"strings"

	"github.com/qa-labs/e2e-suite/internal/format"
	"github.com/qa-labs/e2e-suite/internal/report"
	"github.com/sirupsen/logrus"
)

const maxNameWidth = 50

// ResultsFormatter formats scenario results as a table.
type ResultsFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *ColorHelper
}

// NewResultsFormatter creates a new results table formatter.
func NewResultsFormatter(log logrus.FieldLogger, renderer Renderer) *ResultsFormatter {
	return &ResultsFormatter{
		log:      log.WithField("component", "table.results_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format renders one row per scenario, with a pass/fail footer, followed by a
// list of failed scenarios.
func (f *ResultsFormatter) Format(results []report.ScenarioResult) string {
	var (
		rows   = make([][]string, 0, len(results))
		failed = make([]report.ScenarioResult, 0)
		total  float64
	)

	for _, result := range results {
		if result.Status == report.StatusFailed {
			failed = append(failed, result)
		}
		total += result.Duration

		rows = append(rows, []string{
			format.Truncate(result.Feature, maxNameWidth),
			format.Truncate(result.Scenario, maxNameWidth),
			f.colors.FormatStatus(result.Status),
			f.colors.Muted(strings.Join(result.Tags, ", ")),
			format.Seconds(result.Duration),
		})
	}

	section := Section{
		Title:   "Scenario Results",
		Headers: []string{"Feature", "Scenario", "Status", "Tags", "Duration"},
		Rows:    rows,
		Empty:   "No results",
	}
	if len(rows) > 0 {
		section.Footer = []string{"", fmt.Sprintf("%d scenarios", len(rows)), fmt.Sprintf("%d failed", len(failed)), "", format.Seconds(total)}
	}

	output := f.renderer.Render(section, WithMergedColumns(0))

	if len(failed) > 0 {
		output += f.formatFailures(failed)
	}

	return output
}

func (f *ResultsFormatter) formatFailures(failed []report.ScenarioResult) string {
	var builder strings.Builder

	builder.WriteString("\n" + f.colors.Header("▸ Failed Scenarios") + "\n\n")

	for _, result := range failed {
		builder.WriteString(fmt.Sprintf("  %s %s: %s\n",
			f.colors.Failure("✗"),
			f.colors.Bold(result.Feature),
			result.Scenario,
		))
	}

	return builder.String()
}
