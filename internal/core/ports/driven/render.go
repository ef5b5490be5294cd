package driven

import "github.com/meridian-labs/docsift-cli/internal/core/domain"

// HighlightRenderer wraps matched query text in highlight markup.
// The markup is surface-specific: the HTML renderer emits <mark>
// elements, the terminal surface applies styles instead. Optional;
// core falls back to a no-op that returns the match unchanged.
type HighlightRenderer interface {
	// Highlight wraps a single matched fragment.
	Highlight(match string) string
}

// ResultsSink receives display-ready entries from the result renderer.
// Optional; core falls back to a no-op so rendering logic is testable
// without a display surface.
type ResultsSink interface {
	// ShowResults replaces the displayed entries with a new set.
	// The query is provided for surfaces that label their output.
	ShowResults(entries []domain.ResultEntry, query string)

	// Clear empties and hides the results display.
	Clear()
}
