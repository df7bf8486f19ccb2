package actions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()

	cfg := config.Default()
	cfg.ReportsDir = filepath.Join(base, "reports")
	cfg.ScreenshotsDir = filepath.Join(base, "screenshots")
	cfg.DownloadsDir = filepath.Join(base, "test_data", "downloads")

	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ReportsDir, "chromium-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ReportsDir, "chromium-1", "results.json"), []byte("{}"), 0o600))
	require.NoError(t, os.MkdirAll(cfg.ScreenshotsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ScreenshotsDir, "failure.png"), []byte("png"), 0o600))

	return cfg
}

func TestClean_DryRun(t *testing.T) {
	cfg := testConfig(t)

	paths, err := Clean(logrus.New(), cfg, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(cfg.ReportsDir, "chromium-1"),
		filepath.Join(cfg.ScreenshotsDir, "failure.png"),
	}, paths)

	assert.FileExists(t, filepath.Join(cfg.ScreenshotsDir, "failure.png"))
}

func TestClean_Force(t *testing.T) {
	cfg := testConfig(t)

	_, err := Clean(logrus.New(), cfg, true)
	require.NoError(t, err)

	remaining, err := Artifacts(cfg)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.DirExists(t, cfg.ReportsDir)
}
