package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation index",
	Long: `Runs one query against the documentation index and prints the
matching pages. Matching is a case-insensitive substring scan over
page content; results come back in index order.

Queries must be longer than three characters, the same threshold the
interactive search applies before dispatching.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	query := domain.NormalizeQuery(args[0])
	if !domain.Dispatchable(query) {
		return fmt.Errorf("query %q is too short: more than %d characters are required",
			query, domain.MinQueryLength)
	}

	ctx := cmd.Context()
	if err := sessionService.Open(ctx); err != nil {
		return fmt.Errorf("opening session: %w", err)
	}

	entries, err := sessionService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, entries)
	}

	// Decorated output for people, tab-separated lines for pipes.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return outputSearchTable(cmd, entries)
	}
	return outputSearchPlain(cmd, entries)
}

// searchResultJSON is the machine-readable shape of one result.
type searchResultJSON struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Link    string `json:"link"`
	Display string `json:"display"`
	Snippet string `json:"snippet,omitempty"`
}

func outputSearchJSON(cmd *cobra.Command, entries []domain.ResultEntry) error {
	results := make([]searchResultJSON, len(entries))
	for i := range entries {
		results[i] = searchResultJSON{
			URL:     entries[i].Document.URL,
			Title:   entries[i].Document.Title,
			Link:    entries[i].Link,
			Display: entries[i].Display,
			Snippet: entries[i].Snippet,
		}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, entries []domain.ResultEntry) error {
	if len(entries) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d):\n", len(entries))
	cmd.Println()
	for i := range entries {
		cmd.Printf("  [%d] %s\n", i+1, entries[i].Display)
		cmd.Printf("      %s\n", entries[i].Link)
		if entries[i].Snippet != "" {
			cmd.Printf("      %s\n", entries[i].Snippet)
		}
		cmd.Println()
	}

	return nil
}

func outputSearchPlain(cmd *cobra.Command, entries []domain.ResultEntry) error {
	for i := range entries {
		cmd.Printf("%s\t%s\n", entries[i].Link, entries[i].Display)
	}
	return nil
}
