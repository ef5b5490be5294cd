package services

import (
	"strings"
	"unicode"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
)

// EntryBuilder turns matched documents into display-ready result
// entries: resolved link, visible label, and a highlighted snippet.
// Highlight markup is delegated to the configured HighlightRenderer;
// without one, matches pass through unwrapped.
type EntryBuilder struct {
	highlighter driven.HighlightRenderer
}

// noopHighlighter returns matches unchanged. It is the default when no
// renderer is configured, so entry building works without a display
// surface.
type noopHighlighter struct{}

func (noopHighlighter) Highlight(match string) string { return match }

// NewEntryBuilder creates an entry builder.
// The highlighter is optional; nil selects a pass-through.
func NewEntryBuilder(highlighter driven.HighlightRenderer) *EntryBuilder {
	if highlighter == nil {
		highlighter = noopHighlighter{}
	}
	return &EntryBuilder{highlighter: highlighter}
}

// NoResultsEntry returns the literal entry displayed when a query
// matches nothing.
func NoResultsEntry() domain.ResultEntry {
	return domain.ResultEntry{Display: domain.NoResultsText}
}

// BuildEntries converts matched documents into result entries,
// preserving their order. An empty match set yields an empty slice;
// the no-results placeholder is a display concern and is not included.
func (b *EntryBuilder) BuildEntries(docs []domain.Document, query string) []domain.ResultEntry {
	entries := make([]domain.ResultEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, b.BuildEntry(doc, query))
	}
	return entries
}

// BuildEntry converts one matched document into a result entry.
func (b *EntryBuilder) BuildEntry(doc domain.Document, query string) domain.ResultEntry {
	link := resolveLink(doc.URL)
	return domain.ResultEntry{
		Document: doc,
		Link:     link,
		Display:  displayText(doc, link),
		Snippet:  b.snippet(doc.Content, query),
	}
}

// resolveLink rewrites an absolute site path into a page-relative link
// target. URLs without the leading slash pass through untouched.
func resolveLink(url string) string {
	if strings.HasPrefix(url, "/") {
		return "." + url
	}
	return url
}

// displayText derives the visible label for an entry: the document
// title when present, otherwise the link with any leading "./"
// stripped.
func displayText(doc domain.Document, link string) string {
	if doc.Title != "" {
		return doc.Title
	}
	return strings.TrimPrefix(link, "./")
}

// snippet builds the highlighted excerpt for one document.
//
// The window is domain.SnippetWindow characters anchored at the first
// case-insensitive occurrence of the query; when fewer characters
// remain after the match, the window slides back so it still shows a
// full excerpt. Every occurrence of the query inside the window is
// wrapped by the highlighter, and a truncation ellipsis is appended.
// When the query does not occur at all the leading excerpt is
// returned unhighlighted.
func (b *EntryBuilder) snippet(content, query string) string {
	runes := []rune(content)
	folded := foldRunes(runes)
	needle := foldRunes([]rune(query))

	first := runeIndex(folded, needle, 0)
	if first < 0 {
		if len(runes) <= domain.SnippetWindow {
			return content
		}
		return string(runes[:domain.SnippetWindow])
	}

	start := first
	if len(runes)-start < domain.SnippetWindow {
		start = len(runes) - domain.SnippetWindow
		if start < 0 {
			start = 0
		}
	}
	end := start + domain.SnippetWindow
	if end > len(runes) {
		end = len(runes)
	}

	window := runes[start:end]
	foldedWindow := folded[start:end]

	var sb strings.Builder
	i := 0
	for {
		j := runeIndex(foldedWindow, needle, i)
		if j < 0 {
			sb.WriteString(string(window[i:]))
			break
		}
		sb.WriteString(string(window[i:j]))
		sb.WriteString(b.highlighter.Highlight(string(window[j : j+len(needle)])))
		i = j + len(needle)
	}
	sb.WriteString("...")

	return sb.String()
}

// foldRunes lowercases rune-by-rune so folded offsets stay aligned
// with the original text.
func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// runeIndex returns the first occurrence of needle in hay at or after
// from, or -1. An empty needle never matches.
func runeIndex(hay, needle []rune, from int) int {
	if len(needle) == 0 || from < 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		found := true
		for k := range needle {
			if hay[i+k] != needle[k] {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}
