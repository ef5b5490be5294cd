package render

import (
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
)

// Ensure the null implementations satisfy their interfaces.
var (
	_ driven.HighlightRenderer = (*NullHighlighter)(nil)
	_ driven.ResultsSink       = (*NullSink)(nil)
)

// NullHighlighter returns matches unchanged. Used by plain-text
// surfaces that show snippets without markup.
type NullHighlighter struct{}

// NewNullHighlighter creates a pass-through highlight renderer.
func NewNullHighlighter() *NullHighlighter {
	return &NullHighlighter{}
}

// Highlight returns the matched fragment unchanged.
func (h *NullHighlighter) Highlight(match string) string {
	return match
}

// NullSink discards rendered results. Used when a session runs
// without a display surface, such as one-shot CLI queries.
type NullSink struct{}

// NewNullSink creates a result sink that discards everything.
func NewNullSink() *NullSink {
	return &NullSink{}
}

// ShowResults discards the entries.
func (s *NullSink) ShowResults(entries []domain.ResultEntry, query string) {}

// Clear does nothing.
func (s *NullSink) Clear() {}
