// Package cmd contains CLI command definitions
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/qa-labs/e2e-suite/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger
	// Config is the loaded environment configuration
	Config *config.Config

	envFile   string
	configDir string
	logLevel  string
	verbose   bool
	logFile   io.Closer

	rootCmd = &cobra.Command{
		Use:   "e2e-suite",
		Short: "Browser-driven behaviour test suite",
		Long: `e2e-suite runs Gherkin features in a real browser, records per-run results
and combines every recorded run into a single HTML report.

Run without arguments to launch interactive mode, or use subcommands for direct operations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return Init(envFile)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			Close()
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Init loads the env file, builds the logger and loads the configuration.
func Init(file string) error {
	if err := config.LoadEnvFile(file); err != nil {
		return err
	}

	// Bootstrap logger so config loading can report problems.
	bootstrap, _, err := logging.New(logging.Options{Level: levelName(), Verbose: verbose})
	if err != nil {
		return err
	}

	cfg, err := config.Load(bootstrap, configDir)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(logging.Options{
		Level:   levelName(),
		Verbose: verbose,
		Dir:     cfg.LogsDir,
	})
	if err != nil {
		return err
	}

	Logger = log
	Config = cfg
	logFile = closer

	return nil
}

// Close releases the run's log file.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func levelName() string {
	if logLevel != "" {
		return logLevel
	}
	return os.Getenv("LOG_LEVEL")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Env file to load (default .env)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultConfigDir, "Directory holding <ENV>.yaml settings files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
