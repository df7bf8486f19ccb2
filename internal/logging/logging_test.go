package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    logrus.Level
	}{
		{name: "default", want: logrus.InfoLevel},
		{name: "explicit warn", level: "warn", want: logrus.WarnLevel},
		{name: "invalid falls back", level: "loud", want: logrus.InfoLevel},
		{name: "verbose wins", level: "error", verbose: true, want: logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer

			log, closer, err := New(Options{Level: tt.level, Verbose: tt.verbose, Console: &console})
			require.NoError(t, err)
			defer closer.Close()

			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNew_InvalidLevelNotice(t *testing.T) {
	var console bytes.Buffer

	_, closer, err := New(Options{Level: "loud", Console: &console})
	require.NoError(t, err)
	defer closer.Close()

	assert.Contains(t, console.String(), "Invalid log level 'loud'")
}

func TestNew_WritesConsoleAndFile(t *testing.T) {
	var (
		console bytes.Buffer
		dir     = filepath.Join(t.TempDir(), "logs")
		started = time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC)
	)

	log, closer, err := New(Options{
		Dir:     dir,
		Console: &console,
		Now:     func() time.Time { return started },
	})
	require.NoError(t, err)

	log.Info("Starting test execution")
	require.NoError(t, closer.Close())

	path := FilePath(dir, started)
	assert.Equal(t, filepath.Join(dir, "test_run_2024-03-01_09-30-15.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Starting test execution")
	assert.Contains(t, console.String(), "Starting test execution")
}
