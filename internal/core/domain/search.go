package domain

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the exclusive lower bound on a dispatchable query.
// Normalized input of this many characters or fewer clears the result
// view instead of reaching the query engine.
const MinQueryLength = 3

// NoResultsText is the literal entry displayed when a query matches
// no documents.
const NoResultsText = "no results found"

// SnippetWindow is the excerpt length, in characters, taken from the
// first match position when building a result snippet.
const SnippetWindow = 100

// NormalizeQuery strips leading and trailing whitespace from raw user
// input. Queries are matched exactly as typed otherwise.
func NormalizeQuery(raw string) string {
	return strings.TrimSpace(raw)
}

// Dispatchable reports whether a normalized query is long enough to
// run. Character count is measured in runes, not bytes.
func Dispatchable(query string) bool {
	return utf8.RuneCountInString(query) > MinQueryLength
}

// ResultEntry is a display-ready search hit derived from a Document.
// Entries are ephemeral: they are computed per query and never stored.
type ResultEntry struct {
	// Document is the matched document.
	Document Document

	// Link is the resolved relative link target. A URL with a leading
	// "/" is rewritten to "./" so entries link correctly from any page
	// of the rendered site.
	Link string

	// Display is the visible label: the document Title when present,
	// otherwise Link with any leading "./" stripped.
	Display string

	// Snippet is the excerpt around the first query match, with every
	// occurrence of the query inside the window wrapped in highlight
	// markup.
	Snippet string
}

// LoadReport summarises one bulk-insert pass of the index loader.
type LoadReport struct {
	// Inserted is the number of documents stored.
	Inserted int

	// Failed is the number of records rejected.
	Failed int

	// Failures carries one entry per rejected record for diagnostics.
	Failures []InsertFailure
}

// InsertFailure records a single tolerated insert error within a batch.
type InsertFailure struct {
	// URL identifies the rejected record. Empty when the record
	// carried no URL at all.
	URL string

	// Err is the underlying insert error.
	Err error
}
