package report

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Aggregator folds parsed result files into one AggregateReport.
type Aggregator interface {
	Aggregate(files []*ResultFile) *AggregateReport
}

type aggregator struct {
	log logrus.FieldLogger
	now func() time.Time
}

// NewAggregator creates a new aggregator. now supplies the fallback start/end
// times and the generation timestamp; nil means time.Now.
func NewAggregator(log logrus.FieldLogger, now func() time.Time) Aggregator {
	if now == nil {
		now = time.Now
	}

	return &aggregator{
		log: log.WithField("component", "aggregator"),
		now: now,
	}
}

func (a *aggregator) Aggregate(files []*ResultFile) *AggregateReport {
	var (
		now    = a.now()
		start  *time.Time
		end    *time.Time
		report = &AggregateReport{
			GeneratedAt: now,
			Results:     make([]ScenarioResult, 0),
		}
	)

	for _, file := range files {
		if file == nil {
			continue
		}
		report.Files++

		if file.Start != nil && (start == nil || file.Start.Before(*start)) {
			start = file.Start
		}
		if file.End != nil && (end == nil || file.End.After(*end)) {
			end = file.End
		}

		for _, feature := range file.Features {
			for _, scenario := range feature.Scenarios {
				report.add(feature.Name, scenario)
			}
		}
	}

	report.StartTime = now
	if start != nil {
		report.StartTime = *start
	}

	report.EndTime = now
	if end != nil {
		report.EndTime = *end
	}

	a.log.WithFields(logrus.Fields{
		"files":   report.Files,
		"total":   report.Total,
		"passed":  report.Passed,
		"failed":  report.Failed,
		"skipped": report.Skipped,
	}).Debug("aggregated results")

	return report
}

func (r *AggregateReport) add(feature string, scenario ScenarioRecord) {
	r.Total++

	switch scenario.Status {
	case StatusPassed:
		r.Passed++
	case StatusFailed:
		r.Failed++
	default:
		r.Skipped++
	}

	tags := make([]string, len(scenario.Tags))
	copy(tags, scenario.Tags)

	r.Results = append(r.Results, ScenarioResult{
		Feature:  feature,
		Scenario: scenario.Name,
		Status:   scenario.Status,
		Tags:     tags,
		Duration: scenario.Duration,
	})
}

// Compile-time interface compliance check
var _ Aggregator = (*aggregator)(nil)
