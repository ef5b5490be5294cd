// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/styles"
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
)

// Ensure ResultList can act as the session's results sink.
var _ driven.ResultsSink = (*ResultList)(nil)

// ResultList displays search results in a navigable list. Snippets
// arrive as plain text; the list styles query occurrences itself, the
// terminal counterpart of highlight markup.
type ResultList struct {
	entries  []domain.ResultEntry
	query    string
	searched bool
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		entries:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list. Before any search completes it renders
// nothing; an empty completed search renders the no-results entry.
func (r *ResultList) View() string {
	if !r.searched {
		return ""
	}
	if len(r.entries) == 0 {
		return r.styles.Muted.Render(domain.NoResultsText)
	}

	lines := make([]string, 0, len(r.entries)*3+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.entries)))
	lines = append(lines, header, "")

	// Calculate visible range based on height
	// Each entry takes 3 lines (title + link + snippet)
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.entries) {
		end = len(r.entries)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderEntry(i, &r.entries[i]))
	}

	return strings.Join(lines, "\n")
}

// renderEntry formats a single result entry: label, link target, and
// the snippet with query occurrences styled.
func (r *ResultList) renderEntry(index int, entry *domain.ResultEntry) string {
	// Indicator for selected item
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	display := entry.Display
	if display == "" {
		display = "(untitled)"
	}

	// Truncate the label on cell width, never mid-rune.
	maxLen := r.width - 6
	if maxLen < 10 {
		maxLen = 10
	}
	display = runewidth.Truncate(display, maxLen, "...")

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator + display)
	} else {
		titleLine = r.styles.Normal.Render(indicator + display)
	}

	linkLine := r.styles.Muted.Render("    " + entry.Link)

	maxSnippetLen := r.width - 6
	if maxSnippetLen < 20 {
		maxSnippetLen = 20
	}
	snippet := runewidth.Truncate(entry.Snippet, maxSnippetLen, "...")
	snippetLine := "    " + r.styleOccurrences(snippet)

	return titleLine + "\n" + linkLine + "\n" + snippetLine
}

// styleOccurrences wraps every case-insensitive occurrence of the
// current query in the highlight style, leaving surrounding text muted.
func (r *ResultList) styleOccurrences(text string) string {
	query := strings.TrimSpace(r.query)
	if query == "" {
		return r.styles.Muted.Render(text)
	}

	runes := []rune(text)
	folded := foldRunes(runes)
	needle := foldRunes([]rune(query))

	var b strings.Builder
	i := 0
	for {
		j := runeIndex(folded, needle, i)
		if j < 0 {
			b.WriteString(r.styles.Muted.Render(string(runes[i:])))
			break
		}
		if j > i {
			b.WriteString(r.styles.Muted.Render(string(runes[i:j])))
		}
		b.WriteString(r.styles.Highlight.Render(string(runes[j : j+len(needle)])))
		i = j + len(needle)
	}
	return b.String()
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

// ShowResults replaces the displayed entries with a new set.
func (r *ResultList) ShowResults(entries []domain.ResultEntry, query string) {
	r.entries = entries
	r.query = query
	r.searched = true
	r.selected = 0
}

// Clear empties and hides the results display.
func (r *ResultList) Clear() {
	r.entries = nil
	r.query = ""
	r.searched = false
	r.selected = 0
}

// Entries returns the current entries.
func (r *ResultList) Entries() []domain.ResultEntry {
	return r.entries
}

// Query returns the query the current entries belong to.
func (r *ResultList) Query() string {
	return r.query
}

// Searched reports whether a completed search backs the current view.
func (r *ResultList) Searched() bool {
	return r.searched
}

// Selected returns the index of the selected entry.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.entries) {
		r.selected = index
	}
}

// SelectedEntry returns the currently selected entry, or nil if none.
func (r *ResultList) SelectedEntry() *domain.ResultEntry {
	if len(r.entries) == 0 || r.selected < 0 || r.selected >= len(r.entries) {
		return nil
	}
	return &r.entries[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.entries)-1 {
		r.selected++
	}
}

// SetStyles swaps the styling, used when the theme changes.
func (r *ResultList) SetStyles(s *styles.Styles) {
	if s != nil {
		r.styles = s
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of entries.
func (r *ResultList) Count() int {
	return len(r.entries)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.entries) == 0
}
