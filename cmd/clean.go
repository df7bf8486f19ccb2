package cmd

import (
	"fmt"

	"github.com/qa-labs/e2e-suite/internal/actions"
	"github.com/spf13/cobra"
)

var forceClean bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove reports, screenshots and downloads from previous runs",
	Long: `Lists the artifacts of previous runs in the reports, screenshots and downloads directories.

⚠️  With --force the listed artifacts are permanently deleted.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		paths, err := actions.Clean(Logger, Config, forceClean)
		if err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}

		if !forceClean && len(paths) > 0 {
			fmt.Println("\nUse --force flag to remove them")
		}

		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVarP(&forceClean, "force", "f", false, "Remove artifacts without asking")
	rootCmd.AddCommand(cleanCmd)
}
