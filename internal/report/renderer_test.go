package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	html, err := Render(&AggregateReport{
		StartTime:   fixedNow,
		EndTime:     fixedNow,
		GeneratedAt: fixedNow,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "</html>")
	assert.Contains(t, html, "Total Scenarios: 0")
	assert.Contains(t, html, "Passed: 0")
	assert.Contains(t, html, "Failed: 0")
	assert.Contains(t, html, "Skipped: 0")
	assert.Contains(t, html, "Duration: 0.00 seconds")
	assert.Contains(t, html, "Generated: 2024-06-01 12:00:00")
	assert.Contains(t, html, `<td colspan="5">No results</td>`)
}

func TestRender_Rows(t *testing.T) {
	report := &AggregateReport{
		StartTime:   fixedNow,
		EndTime:     fixedNow.Add(90500 * time.Millisecond),
		GeneratedAt: fixedNow,
		Total:       2,
		Passed:      1,
		Failed:      1,
		Results: []ScenarioResult{
			{Feature: "Login", Scenario: "Valid login", Status: StatusPassed, Tags: []string{"smoke", "auth"}, Duration: 1.234},
			{Feature: "Forms", Scenario: "Submit", Status: StatusFailed, Tags: []string{}, Duration: 2},
		},
	}

	html, err := Render(report)
	require.NoError(t, err)

	assert.Contains(t, html, "Duration: 90.50 seconds")
	assert.Contains(t, html, "<td>Login</td>")
	assert.Contains(t, html, "<td>Valid login</td>")
	assert.Contains(t, html, `<td class="passed">passed</td>`)
	assert.Contains(t, html, "<td>smoke, auth</td>")
	assert.Contains(t, html, "<td>1.23</td>")
	assert.Contains(t, html, `<td class="failed">failed</td>`)
	assert.Contains(t, html, "<td>2.00</td>")
	assert.NotContains(t, html, "No results")
	assert.Less(t, strings.Index(html, "Valid login"), strings.Index(html, "Submit"))
}

func TestRender_EscapesValues(t *testing.T) {
	html, err := Render(&AggregateReport{
		Total:   1,
		Skipped: 1,
		Results: []ScenarioResult{
			{Feature: "<script>alert(1)</script>", Scenario: "a & b", Status: "Weird\"Status", Tags: []string{"<b>"}},
		},
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &amp; b")
	assert.Contains(t, html, "&lt;b&gt;")
}
