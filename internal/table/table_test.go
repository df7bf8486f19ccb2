package table

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/qa-labs/e2e-suite/internal/report"
	"github.com/qa-labs/e2e-suite/internal/verify"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func disableColor(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func TestColorHelper_FormatStatus(t *testing.T) {
	disableColor(t)
	helper := NewColorHelper()

	tests := []struct {
		status   report.Status
		expected string
	}{
		{status: report.StatusPassed, expected: "✓ PASS"},
		{status: report.StatusFailed, expected: "✗ FAIL"},
		{status: report.StatusSkipped, expected: "- SKIP"},
		{status: report.StatusUnknown, expected: "? unknown"},
		{status: "pending", expected: "? pending"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, helper.FormatStatus(tt.status))
		})
	}
}

func TestColorHelper_FormatPercentage(t *testing.T) {
	disableColor(t)
	helper := NewColorHelper()

	assert.Equal(t, "100.0%", helper.FormatPercentage(100))
	assert.Equal(t, "95.5%", helper.FormatPercentage(95.5))
	assert.Equal(t, "10.0%", helper.FormatPercentage(10))
}

func TestSummaryFormatter(t *testing.T) {
	disableColor(t)
	log, _ := logtest.NewNullLogger()

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	out := NewSummaryFormatter(log, NewRenderer(log)).Format(&report.AggregateReport{
		StartTime: start,
		EndTime:   start.Add(90 * time.Second),
		Total:     4,
		Passed:    2,
		Failed:    1,
		Skipped:   1,
		Files:     2,
	})

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "Total Scenarios")
	assert.Contains(t, out, "2 (50.0%)")
	assert.Contains(t, out, "1.5m")
}

func TestResultsFormatter(t *testing.T) {
	disableColor(t)
	log, _ := logtest.NewNullLogger()
	formatter := NewResultsFormatter(log, NewRenderer(log))

	empty := formatter.Format(nil)
	assert.Contains(t, empty, "Scenario Results")
	assert.Contains(t, empty, "No results")
	assert.NotContains(t, empty, "FEATURE")

	out := formatter.Format([]report.ScenarioResult{
		{Feature: "Login", Scenario: "Valid login", Status: report.StatusPassed, Tags: []string{"smoke", "auth"}, Duration: 1.23},
		{Feature: "Forms", Scenario: "Submit", Status: report.StatusFailed, Duration: 0.2},
	})

	assert.Contains(t, out, "Valid login")
	assert.Contains(t, out, "smoke, auth")
	assert.Contains(t, out, "✓ PASS")
	assert.Contains(t, out, "Failed Scenarios")
	assert.True(t, strings.Contains(out, "✗ Forms: Submit"))
	assert.Contains(t, out, "2 SCENARIOS")
	assert.Contains(t, out, "1 FAILED")
}

func TestRenderer_Section(t *testing.T) {
	disableColor(t)
	log, _ := logtest.NewNullLogger()
	renderer := NewRenderer(log)

	out := renderer.Render(Section{
		Title:   "Scenario Results",
		Headers: []string{"Feature", "Scenario"},
		Rows: [][]string{
			{"Checkout", "Pay by card"},
			{"Checkout", "Pay by invoice"},
			{"Search", "Empty query"},
		},
	}, WithMergedColumns(0))

	assert.Contains(t, out, "▸ Scenario Results")
	assert.Contains(t, out, "Pay by invoice")
	assert.Equal(t, 1, strings.Count(out, "Checkout"))

	assert.Equal(t, "\n▸ Nothing\n\nnothing to show\n", renderer.Render(Section{
		Title:   "Nothing",
		Headers: []string{"A"},
		Empty:   "nothing to show",
	}))
}

func TestChecksFormatter(t *testing.T) {
	disableColor(t)
	log, _ := logtest.NewNullLogger()

	out := NewChecksFormatter(log, NewRenderer(log)).Format([]verify.Result{
		{Name: "Go version", Passed: true, Message: "Go version: go1.24.6"},
		{Name: "Playwright browsers", Passed: false, Message: "driver missing"},
	})

	assert.Contains(t, out, "Setup Verification")
	assert.Contains(t, out, "✓ OK")
	assert.Contains(t, out, "✗ FAIL")
	assert.Contains(t, out, "driver missing")
}
