package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"
)

// GeneratedFormat is the layout of the generation timestamp in the summary block.
const GeneratedFormat = "2006-01-02 15:04:05"

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Combined Test Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .summary { background-color: #f5f5f5; padding: 20px; margin-bottom: 20px; }
        .passed { color: green; }
        .failed { color: red; }
        .skipped { color: orange; }
        .unknown { color: gray; }
        table { width: 100%; border-collapse: collapse; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        tr:nth-child(even) { background-color: #f9f9f9; }
    </style>
</head>
<body>
    <h1>Combined Test Report</h1>
    <div class="summary">
        <h2>Summary</h2>
        <p>Total Scenarios: {{ .Total }}</p>
        <p class="passed">Passed: {{ .Passed }}</p>
        <p class="failed">Failed: {{ .Failed }}</p>
        <p class="skipped">Skipped: {{ .Skipped }}</p>
        <p>Duration: {{ printf "%.2f" .DurationSeconds }} seconds</p>
        <p>Generated: {{ .Generated }}</p>
    </div>

    <h2>Test Results</h2>
    <table>
        <tr>
            <th>Feature</th>
            <th>Scenario</th>
            <th>Status</th>
            <th>Tags</th>
            <th>Duration (s)</th>
        </tr>
{{- range .Rows }}
        <tr>
            <td>{{ .Feature }}</td>
            <td>{{ .Scenario }}</td>
            <td class="{{ .Status | lower }}">{{ .Status }}</td>
            <td>{{ join ", " .Tags }}</td>
            <td>{{ printf "%.2f" .Duration }}</td>
        </tr>
{{- else }}
        <tr>
            <td colspan="5">No results</td>
        </tr>
{{- end }}
    </table>
</body>
</html>
`

var reportTemplate = template.Must(template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(htmlTemplate))

type reportView struct {
	Total           int
	Passed          int
	Failed          int
	Skipped         int
	DurationSeconds float64
	Generated       string
	Rows            []rowView
}

type rowView struct {
	Feature  string
	Scenario string
	Status   string
	Tags     []string
	Duration float64
}

// Render produces the HTML document for report. It has no side effects.
func Render(report *AggregateReport) (string, error) {
	view := reportView{
		Total:           report.Total,
		Passed:          report.Passed,
		Failed:          report.Failed,
		Skipped:         report.Skipped,
		DurationSeconds: report.Duration().Seconds(),
		Generated:       report.GeneratedAt.Format(GeneratedFormat),
		Rows:            make([]rowView, 0, len(report.Results)),
	}

	for _, result := range report.Results {
		view.Rows = append(view.Rows, rowView{
			Feature:  result.Feature,
			Scenario: result.Scenario,
			Status:   string(result.Status),
			Tags:     result.Tags,
			Duration: result.Duration,
		})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	return buf.String(), nil
}
