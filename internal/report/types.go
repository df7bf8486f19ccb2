// Package report merges per-run JSON result files into one aggregate report
// and renders it as an HTML summary.
package report

import "time"

// Status is the outcome string recorded for a scenario.
type Status string

const (
	// StatusPassed counts towards Passed.
	StatusPassed Status = "passed"
	// StatusFailed counts towards Failed.
	StatusFailed Status = "failed"
	// StatusSkipped counts towards Skipped.
	StatusSkipped Status = "skipped"
	// StatusUnknown is assigned when a record carries no usable status. Counted as skipped.
	StatusUnknown Status = "unknown"
)

// Defaults applied to records with missing or ill-typed fields.
const (
	DefaultFeatureName  = "Unnamed Feature"
	DefaultScenarioName = "Unnamed Scenario"
	DefaultDuration     = 0.0
)

// ScenarioResult is one scenario row of the aggregate report.
type ScenarioResult struct {
	Feature  string
	Scenario string
	Status   Status
	Tags     []string
	Duration float64 // seconds
}

// FeatureRecord is a decoded feature entry of a result file.
type FeatureRecord struct {
	Name      string
	Scenarios []ScenarioRecord
}

// ScenarioRecord is a decoded scenario entry of a result file.
type ScenarioRecord struct {
	Name     string
	Status   Status
	Tags     []string
	Duration float64
}

// ResultFile is a successfully parsed result file. Start and End are nil when
// absent or unparsable.
type ResultFile struct {
	Path     string
	Start    *time.Time
	End      *time.Time
	Features []FeatureRecord
}

// AggregateReport is the merged view over every parsed result file.
type AggregateReport struct {
	StartTime   time.Time
	EndTime     time.Time
	GeneratedAt time.Time
	Total       int
	Passed      int
	Failed      int
	Skipped     int
	Results     []ScenarioResult
	Files       int
}

// Duration is the wall-clock span covered by the merged runs.
func (r *AggregateReport) Duration() time.Duration {
	if r.EndTime.Before(r.StartTime) {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// PassRate is the percentage of passed scenarios, zero when nothing ran.
func (r *AggregateReport) PassRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total) * 100.0
}
