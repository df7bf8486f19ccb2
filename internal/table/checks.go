package table

import (
	"github.com/qa-labs/e2e-suite/internal/verify"
	"github.com/sirupsen/logrus"
)

// ChecksFormatter formats setup verification results.
type ChecksFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *ColorHelper
}

// NewChecksFormatter creates a new checks table formatter.
func NewChecksFormatter(log logrus.FieldLogger, renderer Renderer) *ChecksFormatter {
	return &ChecksFormatter{
		log:      log.WithField("component", "table.checks_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format renders one row per check.
func (f *ChecksFormatter) Format(results []verify.Result) string {
	rows := make([][]string, 0, len(results))

	for _, r := range results {
		message := r.Message
		if !r.Passed {
			message = f.colors.Failure(message)
		}

		rows = append(rows, []string{r.Name, f.colors.FormatCheck(r.Passed), message})
	}

	return f.renderer.Render(Section{
		Title:   "Setup Verification",
		Headers: []string{"Check", "Status", "Details"},
		Rows:    rows,
		Empty:   "No checks configured",
	}, WithRowLines(true))
}
