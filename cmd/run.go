package cmd

import (
	"os"

	"github.com/qa-labs/e2e-suite/internal/actions"
	"github.com/qa-labs/e2e-suite/internal/suite"
	"github.com/spf13/cobra"
)

var (
	runTags            string
	runFormat          string
	runLabel           string
	runCombine         bool
	runInstallBrowsers bool
)

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Run features in a browser",
	Long: `Runs the given feature files or directories (default: features) against the configured
browser and writes <reports-dir>/<label>/results.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions.RunSuite(cmd.Context(), Logger, Config, actions.RunOptions{
			Options: suite.Options{
				Paths:           args,
				Tags:            runTags,
				Format:          runFormat,
				Label:           runLabel,
				Output:          os.Stdout,
				InstallBrowsers: runInstallBrowsers,
			},
			Combine: runCombine,
		})
	},
}

func init() {
	runCmd.Flags().StringVarP(&runTags, "tags", "t", "", "Tag expression, e.g. \"@smoke && ~@wip\"")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "pretty", "godog output format")
	runCmd.Flags().StringVar(&runLabel, "label", "", "Results subdirectory name (default <browser>-<timestamp>)")
	runCmd.Flags().BoolVar(&runCombine, "combine", true, "Regenerate the combined report after the run")
	runCmd.Flags().BoolVar(&runInstallBrowsers, "install-browsers", false, "Install playwright browsers before running")
	rootCmd.AddCommand(runCmd)
}
