package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENV", "BASE_URL", "BROWSER", "HEADLESS", "TIMEOUT_MS", "REPORTS_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(logrus.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultEnv, cfg.Env)
	assert.Equal(t, "chromium", cfg.Browser)
	assert.Equal(t, 1920, cfg.Viewport.Width)
	assert.Equal(t, 1080, cfg.Viewport.Height)
	assert.Equal(t, "reports", cfg.ReportsDir)
}

func TestLoad_ReadsEnvironmentFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "staging")

	dir := t.TempDir()
	content := `base_url: https://staging.example.com
browser: firefox
headless: false
timeout_ms: 5000
viewport:
  width: 1280
  height: 720
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "staging.yaml"), []byte(content), 0o600))

	cfg, err := Load(logrus.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, "firefox", cfg.Browser)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, Viewport{Width: 1280, Height: 720}, cfg.Viewport)
	assert.Equal(t, "screenshots", cfg.ScreenshotsDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "http://127.0.0.1:3000")
	t.Setenv("HEADLESS", "false")
	t.Setenv("TIMEOUT_MS", "1500")

	cfg, err := Load(logrus.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:3000", cfg.BaseURL)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 1500, cfg.TimeoutMs)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		wantErr error
	}{
		{
			name:    "unknown browser",
			env:     map[string]string{"BROWSER": "netscape"},
			wantErr: ErrUnknownBrowser,
		},
		{
			name:    "zero timeout",
			file:    "timeout_ms: 0\n",
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "bad viewport",
			file:    "viewport:\n  width: 0\n  height: 10\n",
			wantErr: ErrInvalidViewport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			if tt.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnv+".yaml"), []byte(tt.file), 0o600))
			}

			_, err := Load(logrus.New(), dir)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnv+".yaml"), []byte("viewport: [1, 2"), 0o600))

	_, err := Load(logrus.New(), dir)
	require.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing default is fine", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, LoadEnvFile(""))
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		require.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	})

	t.Run("loads values", func(t *testing.T) {
		t.Setenv("E2E_SUITE_TEST_VALUE", "")
		require.NoError(t, os.Unsetenv("E2E_SUITE_TEST_VALUE"))

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("E2E_SUITE_TEST_VALUE=hello\n"), 0o600))

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "hello", os.Getenv("E2E_SUITE_TEST_VALUE"))
	})
}

func TestConfig_String(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = ""

	out := cfg.String()
	assert.Contains(t, out, "Current Configuration:")
	assert.Contains(t, out, "(not set)")
	assert.Contains(t, out, "1920x1080")
}
