package cmd

import (
	"github.com/qa-labs/e2e-suite/internal/actions"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that this machine can run the suite",
	Long: `Checks the Go toolchain version, linked modules, the environment settings file,
output directories and that the configured playwright browser launches.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return actions.Verify(cmd.Context(), Logger, Config)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
