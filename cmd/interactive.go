package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/qa-labs/e2e-suite/internal/actions"
	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/qa-labs/e2e-suite/internal/interactive"
	"github.com/qa-labs/e2e-suite/internal/suite"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  `Launches the interactive Terminal User Interface for e2e-suite.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return RunInteractive(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive shows the main menu until the user exits. Init must have been called.
func RunInteractive(ctx context.Context) error {
	fmt.Println("e2e-suite - Interactive Mode")
	fmt.Println("============================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "▶️  Run Features",
				Description: "Run features in the configured browser",
				Action: func() error {
					return runFeaturesInteractive(ctx)
				},
			},
			{
				Name:        "📊 Combine Reports",
				Description: "Merge all recorded results into one HTML report",
				Action: func() error {
					_, err := actions.Combine(Logger, actions.CombineOptions{ReportsDir: Config.ReportsDir, Summary: true})
					return pauseOnError(err)
				},
			},
			{
				Name:        "🔍 Verify Setup",
				Description: "Check toolchain, modules, directories and browsers",
				Action: func() error {
					return pauseOnError(actions.Verify(ctx, Logger, Config))
				},
			},
			{
				Name:        "🧹 Clean",
				Description: "Remove reports, screenshots and downloads (destructive)",
				Action:      cleanInteractive,
			},
			{
				Name:        "📋 Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					return pauseOnError(actions.ShowConfig(Logger, configDir))
				},
			},
		}

		if err := interactive.ShowMenu("What would you like to do?", options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return nil
			}
			return err
		}

		fmt.Println()
	}
}

func runFeaturesInteractive(ctx context.Context) error {
	answers, err := interactive.AskRun(interactive.RunAnswers{
		Paths:    "features",
		Browser:  Config.Browser,
		Headless: Config.Headless,
		Combine:  true,
	}, config.Browsers)
	if err != nil {
		// Interrupted prompt: back to the menu.
		return nil
	}

	cfg := *Config
	cfg.Browser = answers.Browser
	cfg.Headless = answers.Headless

	err = actions.RunSuite(ctx, Logger, &cfg, actions.RunOptions{
		Options: suite.Options{
			Paths:  answers.FeaturePaths(),
			Tags:   answers.Tags,
			Output: os.Stdout,
		},
		Combine: answers.Combine,
	})

	return pauseOnError(err)
}

func cleanInteractive() error {
	paths, err := actions.Clean(Logger, Config, false)
	if err != nil || len(paths) == 0 {
		return pauseOnError(err)
	}

	if !interactive.Confirm("⚠️  Are you SURE you want to remove these artifacts? This cannot be undone!") {
		fmt.Println("Clean canceled.")
		interactive.PauseForEnter()
		return nil
	}

	_, err = actions.Clean(Logger, Config, true)
	return pauseOnError(err)
}

// pauseOnError reports err without leaving the menu.
func pauseOnError(err error) error {
	if err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
	}
	interactive.PauseForEnter()
	return nil
}
