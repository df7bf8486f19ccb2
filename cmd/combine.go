package cmd

import (
	"github.com/qa-labs/e2e-suite/internal/actions"
	"github.com/qa-labs/e2e-suite/internal/report"
	"github.com/spf13/cobra"
)

var (
	combineReportsDir string
	combinePattern    string
	combineOutput     string
	combineSummary    bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine all recorded results into one HTML report",
	Long: `Discovers every results.json below the reports directory, merges them and writes
a single HTML report. Unreadable or malformed result files are logged and skipped.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		dir := combineReportsDir
		if dir == "" {
			dir = Config.ReportsDir
		}

		_, err := actions.Combine(Logger, actions.CombineOptions{
			ReportsDir: dir,
			Pattern:    combinePattern,
			OutputPath: combineOutput,
			Summary:    combineSummary,
		})
		return err
	},
}

func init() {
	combineCmd.Flags().StringVar(&combineReportsDir, "reports-dir", "", "Directory to search for results (default from config)")
	combineCmd.Flags().StringVar(&combinePattern, "pattern", report.DefaultPattern, "Glob matched against paths relative to the reports directory")
	combineCmd.Flags().StringVarP(&combineOutput, "output", "o", "", "Output HTML file (default <reports-dir>/combined_report.html)")
	combineCmd.Flags().BoolVar(&combineSummary, "summary", true, "Print summary and results tables")
	rootCmd.AddCommand(combineCmd)
}
