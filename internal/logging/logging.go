// Package logging builds the process logger: console output plus an optional per-run log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// TimestampFormat is used for every log line.
	TimestampFormat = "2006-01-02 15:04:05"

	fileTimestampFormat = "2006-01-02_15-04-05"
)

// Options configures New.
type Options struct {
	// Level is a logrus level name. Empty or invalid means info.
	Level string
	// Verbose forces debug level.
	Verbose bool
	// Dir receives a test_run_<timestamp>.log file when set.
	Dir string
	// Console is the console writer, stderr when nil.
	Console io.Writer
	// Now is used for the log file name, time.Now when nil.
	Now func() time.Time
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates the logger. The returned closer releases the log file.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	log.SetLevel(parseLevel(console, opts.Level))
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if opts.Dir == "" {
		log.SetOutput(console)
		return log, nopCloser{}, nil
	}

	path, file, err := openRunFile(opts.Dir, opts.Now)
	if err != nil {
		return nil, nil, err
	}

	log.SetOutput(io.MultiWriter(console, file))
	log.WithField("path", path).Debug("logging to file")

	return log, file, nil
}

// FilePath returns the log file name for a run started at t.
func FilePath(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("test_run_%s.log", t.Format(fileTimestampFormat)))
}

func openRunFile(dir string, now func() time.Time) (string, *os.File, error) {
	if now == nil {
		now = time.Now
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	path := FilePath(dir, now())

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	return path, file, nil
}

func parseLevel(console io.Writer, name string) logrus.Level {
	if name == "" {
		return logrus.InfoLevel
	}

	level, err := logrus.ParseLevel(name)
	if err != nil {
		// Logger isn't usable yet.
		fmt.Fprintf(console, "Invalid log level '%s', defaulting to 'info'\n", name)
		return logrus.InfoLevel
	}

	return level
}
