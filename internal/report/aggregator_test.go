package report

import (
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func ptr(t time.Time) *time.Time { return &t }

func scenario(name string, status Status) ScenarioRecord {
	return ScenarioRecord{Name: name, Status: status, Tags: []string{}}
}

func TestAggregator_Empty(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	report := NewAggregator(log, clock).Aggregate(nil)

	assert.Zero(t, report.Total)
	assert.Zero(t, report.Passed)
	assert.Zero(t, report.Failed)
	assert.Zero(t, report.Skipped)
	assert.Empty(t, report.Results)
	assert.Equal(t, fixedNow, report.StartTime)
	assert.Equal(t, fixedNow, report.EndTime)
	assert.Equal(t, fixedNow, report.GeneratedAt)
}

func TestAggregator_StatusBuckets(t *testing.T) {
	tests := []struct {
		status                  Status
		passed, failed, skipped int
	}{
		{status: StatusPassed, passed: 1},
		{status: StatusFailed, failed: 1},
		{status: StatusSkipped, skipped: 1},
		{status: StatusUnknown, skipped: 1},
		{status: "undefined", skipped: 1},
		{status: "Passed", skipped: 1},
	}

	log, _ := logtest.NewNullLogger()

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			report := NewAggregator(log, clock).Aggregate([]*ResultFile{{
				Features: []FeatureRecord{{Name: "F", Scenarios: []ScenarioRecord{scenario("S", tt.status)}}},
			}})

			assert.Equal(t, 1, report.Total)
			assert.Equal(t, tt.passed, report.Passed)
			assert.Equal(t, tt.failed, report.Failed)
			assert.Equal(t, tt.skipped, report.Skipped)
		})
	}
}

func TestAggregator_TotalsAlwaysAddUp(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	statuses := []Status{StatusPassed, StatusFailed, StatusSkipped, StatusUnknown, "pending"}

	var files []*ResultFile
	for i := 0; i < 7; i++ {
		feature := FeatureRecord{Name: "F"}
		for j := 0; j <= i; j++ {
			feature.Scenarios = append(feature.Scenarios, scenario("S", statuses[(i*j)%len(statuses)]))
		}
		files = append(files, &ResultFile{Features: []FeatureRecord{feature}})
	}

	report := NewAggregator(log, clock).Aggregate(files)

	assert.Equal(t, 28, report.Total)
	assert.Equal(t, report.Total, report.Passed+report.Failed+report.Skipped)
	assert.Len(t, report.Results, report.Total)
}

func TestAggregator_TimeBounds(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	t1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
	t4 := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	report := NewAggregator(log, clock).Aggregate([]*ResultFile{
		{Start: ptr(t2), End: ptr(t4)},
		{Start: ptr(t1), End: ptr(t3)},
		{},
	})

	assert.Equal(t, t1, report.StartTime)
	assert.Equal(t, t4, report.EndTime)
	assert.Equal(t, 3, report.Files)
	assert.Equal(t, 3*time.Hour+30*time.Minute, report.Duration())
}

func TestAggregator_OnlyEndKnown(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	end := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)

	report := NewAggregator(log, clock).Aggregate([]*ResultFile{{End: ptr(end)}})

	assert.Equal(t, fixedNow, report.StartTime)
	assert.Equal(t, end, report.EndTime)
	assert.Zero(t, report.Duration())
}

func TestAggregator_Order(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	report := NewAggregator(log, clock).Aggregate([]*ResultFile{
		{Features: []FeatureRecord{
			{Name: "B", Scenarios: []ScenarioRecord{scenario("b1", StatusPassed), scenario("b2", StatusPassed)}},
			{Name: "A", Scenarios: []ScenarioRecord{scenario("a1", StatusFailed)}},
		}},
		{Features: []FeatureRecord{
			{Name: "C", Scenarios: []ScenarioRecord{scenario("c1", StatusSkipped)}},
		}},
	})

	require.Len(t, report.Results, 4)

	names := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		names = append(names, r.Feature+"/"+r.Scenario)
	}
	assert.Equal(t, []string{"B/b1", "B/b2", "A/a1", "C/c1"}, names)
}

func TestAggregateReport_PassRate(t *testing.T) {
	assert.Zero(t, (&AggregateReport{}).PassRate())
	assert.InDelta(t, 75.0, (&AggregateReport{Total: 4, Passed: 3}).PassRate(), 0.001)
}
