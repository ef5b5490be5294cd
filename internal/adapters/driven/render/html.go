package render

import "github.com/meridian-labs/docsift-cli/internal/core/ports/driven"

// Ensure HTMLHighlighter implements the interface.
var _ driven.HighlightRenderer = (*HTMLHighlighter)(nil)

// HTMLHighlighter wraps matched text in <mark> elements.
//
// The matched fragment is inserted verbatim, without entity escaping.
// Snippets are built from indexed document text, which the site build
// pipeline has already stripped of markup, so escaping here would
// double-encode ordinary prose.
type HTMLHighlighter struct{}

// NewHTMLHighlighter creates an HTML highlight renderer.
func NewHTMLHighlighter() *HTMLHighlighter {
	return &HTMLHighlighter{}
}

// Highlight wraps a single matched fragment in a <mark> element.
func (h *HTMLHighlighter) Highlight(match string) string {
	return "<mark>" + match + "</mark>"
}
