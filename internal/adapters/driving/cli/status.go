package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the index and session status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := cmd.Context()
	openErr := sessionService.Open(ctx)

	cmd.Println("Index Status")
	cmd.Println("============")
	cmd.Println()
	cmd.Printf("  %-11s %s\n", "Session:", sessionService.ID())
	cmd.Printf("  %-11s %s\n", "State:", sessionService.State())

	if path := sessionService.StorePath(); path != "" {
		cmd.Printf("  %-11s %s\n", "Store:", path)
	}

	cmd.Printf("  %-11s v%d\n", "Schema:", domain.IndexSchemaVersion)
	cmd.Printf("  %-11s %s\n", "Source:", configuredSource())

	if count, err := sessionService.DocumentCount(ctx); err == nil {
		cmd.Printf("  %-11s %d\n", "Documents:", count)
	}

	if openErr != nil {
		return fmt.Errorf("session open: %w", openErr)
	}
	return nil
}

// configuredSource describes where the index content comes from.
// A base URL takes precedence over a local directory.
func configuredSource() string {
	if settingsService == nil {
		return "not configured"
	}

	settings, err := settingsService.Get()
	if err != nil {
		return "not configured"
	}

	switch {
	case settings.Site.BaseURL != "":
		return settings.Site.BaseURL
	case settings.Site.Dir != "":
		return settings.Site.Dir
	default:
		return "not configured"
	}
}
