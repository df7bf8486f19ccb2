// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEnv is used when ENV is not set.
	DefaultEnv = "dev"
	// DefaultConfigDir holds the per-environment settings files.
	DefaultConfigDir = "config"
)

var (
	// ErrUnknownBrowser is returned when the configured browser type is not supported.
	ErrUnknownBrowser = errors.New("unknown browser type")
	// ErrInvalidTimeout is returned for a non-positive timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrInvalidViewport is returned for a non-positive viewport dimension.
	ErrInvalidViewport = errors.New("viewport dimensions must be positive")
)

// Browsers lists the supported browser types.
var Browsers = []string{"chromium", "firefox", "webkit"}

// Viewport is the browser window size.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds the application configuration
type Config struct {
	Env            string   `yaml:"-"`
	Path           string   `yaml:"-"`
	BaseURL        string   `yaml:"base_url"`
	Browser        string   `yaml:"browser"`
	Headless       bool     `yaml:"headless"`
	SlowMoMs       int      `yaml:"slow_mo_ms"`
	TimeoutMs      int      `yaml:"timeout_ms"`
	Viewport       Viewport `yaml:"viewport"`
	ReportsDir     string   `yaml:"reports_dir"`
	ScreenshotsDir string   `yaml:"screenshots_dir"`
	DownloadsDir   string   `yaml:"downloads_dir"`
	LogsDir        string   `yaml:"logs_dir"`
}

// Default returns the configuration used when no settings file exists.
func Default() *Config {
	return &Config{
		Env:            DefaultEnv,
		BaseURL:        "http://localhost:8080",
		Browser:        "chromium",
		Headless:       true,
		TimeoutMs:      30000,
		Viewport:       Viewport{Width: 1920, Height: 1080},
		ReportsDir:     "reports",
		ScreenshotsDir: "screenshots",
		DownloadsDir:   filepath.Join("test_data", "downloads"),
		LogsDir:        "logs",
	}
}

// LoadEnvFile loads the given env file into the process environment.
// An empty name means ".env", which is allowed to be absent.
func LoadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Load(file); err != nil {
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}

// Load reads config/<ENV>.yaml from dir and applies environment overrides.
func Load(log logrus.FieldLogger, dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultConfigDir
	}

	cfg := Default()
	cfg.Env = getEnv("ENV", DefaultEnv)
	cfg.Path = filepath.Join(dir, cfg.Env+".yaml")

	log = log.WithFields(logrus.Fields{
		"component": "config",
		"env":       cfg.Env,
		"path":      cfg.Path,
	})

	data, err := os.ReadFile(cfg.Path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", cfg.Path, err)
		}
		log.Info("Loaded configuration for environment")
	case os.IsNotExist(err):
		log.Debug("no settings file, using defaults")
	default:
		return nil, fmt.Errorf("reading %s: %w", cfg.Path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", cfg.Env, err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.BaseURL = getEnv("BASE_URL", c.BaseURL)
	c.Browser = getEnv("BROWSER", c.Browser)
	c.ReportsDir = getEnv("REPORTS_DIR", c.ReportsDir)

	if v := os.Getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid HEADLESS: %w", err)
		}
		c.Headless = headless
	}

	if v := os.Getenv("TIMEOUT_MS"); v != "" {
		timeout, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TIMEOUT_MS: %w", err)
		}
		c.TimeoutMs = timeout
	}

	return nil
}

// Validate checks the settings the browser layer depends on.
func (c *Config) Validate() error {
	if !slices.Contains(Browsers, c.Browser) {
		return fmt.Errorf("%w: %q", ErrUnknownBrowser, c.Browser)
	}

	if c.TimeoutMs <= 0 {
		return ErrInvalidTimeout
	}

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return ErrInvalidViewport
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	baseURLDisplay := c.BaseURL
	if baseURLDisplay == "" {
		baseURLDisplay = "(not set)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Environment:       %s
Settings File:     %s
Base URL:          %s
Browser:           %s
Headless:          %t
Slow Mo:           %dms
Timeout:           %dms
Viewport:          %dx%d
Reports Dir:       %s
Screenshots Dir:   %s
Downloads Dir:     %s
Logs Dir:          %s`,
		c.Env,
		c.Path,
		baseURLDisplay,
		c.Browser,
		c.Headless,
		c.SlowMoMs,
		c.TimeoutMs,
		c.Viewport.Width,
		c.Viewport.Height,
		c.ReportsDir,
		c.ScreenshotsDir,
		c.DownloadsDir,
		c.LogsDir,
	)
}
