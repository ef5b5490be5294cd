package cli

import (
	"github.com/spf13/cobra"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("docsift version %s (index schema v%d)\n", version, domain.IndexSchemaVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
