package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ResultsFileName is the file each run writes and the combiner looks for.
const ResultsFileName = "results.json"

// ScenarioEntry is one recorded scenario outcome.
type ScenarioEntry struct {
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags"`
	Duration float64  `json:"duration"`
}

type featureEntry struct {
	Name      string          `json:"name"`
	Scenarios []ScenarioEntry `json:"scenarios"`
}

type resultsFile struct {
	StartTime string          `json:"start_time,omitempty"`
	EndTime   string          `json:"end_time,omitempty"`
	Features  []*featureEntry `json:"features"`
}

// Recorder collects scenario outcomes for one run.
type Recorder struct {
	log      logrus.FieldLogger
	mu       sync.Mutex
	now      func() time.Time
	start    time.Time
	end      time.Time
	features []*featureEntry
	index    map[string]*featureEntry
}

// NewRecorder creates a recorder. now may be nil.
func NewRecorder(log logrus.FieldLogger, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}

	return &Recorder{
		log:      log.WithField("component", "recorder"),
		now:      now,
		features: make([]*featureEntry, 0),
		index:    make(map[string]*featureEntry),
	}
}

// Start marks the beginning of the run.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start = r.now()
}

// Finish marks the end of the run.
func (r *Recorder) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.end = r.now()
}

// Record appends a scenario to its feature, keeping first-seen feature order.
func (r *Recorder) Record(feature string, entry ScenarioEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	f, ok := r.index[feature]
	if !ok {
		f = &featureEntry{Name: feature, Scenarios: make([]ScenarioEntry, 0, 4)}
		r.index[feature] = f
		r.features = append(r.features, f)
	}

	f.Scenarios = append(f.Scenarios, entry)

	r.log.WithFields(logrus.Fields{
		"feature":  feature,
		"scenario": entry.Name,
		"status":   entry.Status,
	}).Debug("recorded scenario")
}

// Counts returns total and failed scenario counts.
func (r *Recorder) Counts() (total, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.features {
		for _, s := range f.Scenarios {
			total++
			if s.Status == StatusFailed {
				failed++
			}
		}
	}

	return total, failed
}

// WriteFile writes the run as <dir>/results.json and returns the path.
func (r *Recorder) WriteFile(dir string) (string, error) {
	r.mu.Lock()
	file := resultsFile{
		StartTime: formatTime(r.start),
		EndTime:   formatTime(r.end),
		Features:  r.features,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	r.mu.Unlock()

	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ResultsFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // results are shared artefacts
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	r.log.WithField("path", path).Info("results written")

	return path, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
