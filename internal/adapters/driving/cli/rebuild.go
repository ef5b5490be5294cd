package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Drop and reload the search index",
	Long: `Drops the index store and reloads every page record from the
configured site. This is the only way to pick up new or changed
content; the index is never updated incrementally.`,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := cmd.Context()
	if err := sessionService.Open(ctx); err != nil {
		return fmt.Errorf("opening session: %w", err)
	}

	cmd.Println("Rebuilding index...")

	report, err := sessionService.Rebuild(ctx)
	if err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	if report == nil {
		cmd.Println("No site configured; the store was recreated empty.")
		cmd.Println("Set one with 'docsift config set site.base_url <url>' or 'docsift config set site.dir <path>'.")
		return nil
	}

	cmd.Printf("Reloaded %d documents (%d failed).\n", report.Inserted, report.Failed)
	for _, f := range report.Failures {
		label := f.URL
		if label == "" {
			label = "(no url)"
		}
		cmd.Printf("  %s: %v\n", label, f.Err)
	}

	return nil
}
