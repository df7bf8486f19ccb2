package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultOutputPath is where the combined HTML report is written.
const DefaultOutputPath = "reports/combined_report.html"

// Config holds the combiner configuration
type Config struct {
	ReportsDir string
	Pattern    string
	OutputPath string
	// Now is the clock used for fallbacks and the generation timestamp.
	Now func() time.Time
}

// Combiner runs the discover, parse, aggregate and render pipeline.
type Combiner struct {
	log        logrus.FieldLogger
	cfg        Config
	discoverer Discoverer
	parser     Parser
	aggregator Aggregator
}

// NewCombiner creates a new combiner
func NewCombiner(log logrus.FieldLogger, cfg Config) (*Combiner, error) {
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = "reports"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	discoverer, err := NewDiscoverer(log, cfg.Pattern)
	if err != nil {
		return nil, err
	}

	return &Combiner{
		log:        log.WithField("component", "combiner"),
		cfg:        cfg,
		discoverer: discoverer,
		parser:     NewParser(log),
		aggregator: NewAggregator(log, cfg.Now),
	}, nil
}

// Combine discovers and parses every result file and aggregates them.
// Per-file problems are logged and never abort the run.
func (c *Combiner) Combine() (*AggregateReport, error) {
	paths, err := c.discoverer.Discover(c.cfg.ReportsDir)
	if err != nil {
		return nil, fmt.Errorf("discovering result files: %w", err)
	}

	files := make([]*ResultFile, 0, len(paths))
	for _, path := range paths {
		file, ok := c.parser.Parse(path)
		if !ok {
			continue
		}
		files = append(files, file)
	}

	c.log.WithFields(logrus.Fields{
		"discovered": len(paths),
		"parsed":     len(files),
	}).Info("combining result files")

	return c.aggregator.Aggregate(files), nil
}

// Run combines, renders and writes the report to the configured output path.
func (c *Combiner) Run() (*AggregateReport, error) {
	report, err := c.Combine()
	if err != nil {
		return nil, err
	}

	html, err := Render(report)
	if err != nil {
		return nil, err
	}

	if err := Write(c.cfg.OutputPath, html); err != nil {
		return nil, err
	}

	c.log.WithField("path", c.cfg.OutputPath).Info("combined report generated")

	return report, nil
}

// OutputPath is where Run writes the report.
func (c *Combiner) OutputPath() string {
	return c.cfg.OutputPath
}

// Write stores html at path, creating parent directories.
func Write(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil { //nolint:gosec // report is meant to be shared
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
