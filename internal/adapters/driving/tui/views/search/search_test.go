package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/keymap"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/messages"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/styles"
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, query string) ([]domain.ResultEntry, error)
}

func (m *MockSearchService) Search(ctx context.Context, query string) ([]domain.ResultEntry, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []domain.ResultEntry{}, nil
}

// MockActionService implements driving.ResultActionService for testing.
type MockActionService struct {
	OpenEntryFunc   func(ctx context.Context, entry *domain.ResultEntry) error
	CopyLinkFunc    func(ctx context.Context, entry *domain.ResultEntry) error
	ResolveLinkFunc func(entry *domain.ResultEntry) string
}

func (m *MockActionService) OpenEntry(ctx context.Context, entry *domain.ResultEntry) error {
	if m.OpenEntryFunc != nil {
		return m.OpenEntryFunc(ctx, entry)
	}
	return nil
}

func (m *MockActionService) CopyLink(ctx context.Context, entry *domain.ResultEntry) error {
	if m.CopyLinkFunc != nil {
		return m.CopyLinkFunc(ctx, entry)
	}
	return nil
}

func (m *MockActionService) ResolveLink(entry *domain.ResultEntry) string {
	if m.ResolveLinkFunc != nil {
		return m.ResolveLinkFunc(entry)
	}
	if entry == nil {
		return ""
	}
	return entry.Link
}

// Helper function to create test result entries.
func testEntries() []domain.ResultEntry {
	return []domain.ResultEntry{
		{
			Document: domain.Document{
				URL:     "/getting-started.html",
				Title:   "Getting Started",
				Content: "Install the package before anything else.",
			},
			Link:    "./getting-started.html",
			Display: "Getting Started",
			Snippet: "Install the package before anything else....",
		},
		{
			Document: domain.Document{
				URL:     "/guide/configuration.html",
				Title:   "Configuration",
				Content: "Configure the site root and theme.",
			},
			Link:    "./guide/configuration.html",
			Display: "Configuration",
			Snippet: "Configure the site root and theme....",
		},
	}
}

// typeRunes simulates the user typing into the focused input.
func typeRunes(view *View, s string) tea.Cmd {
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

// collectMsgs executes a command, flattening tea.BatchMsg, and returns
// every message the command tree produces. Update batches the input
// component's cursor cmd with the dispatch cmd, so tests inspect the
// produced messages rather than the cmd itself.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// findSearchCompleted returns the SearchCompleted message among msgs, if any.
func findSearchCompleted(msgs []tea.Msg) (messages.SearchCompleted, bool) {
	for _, m := range msgs {
		if sc, ok := m.(messages.SearchCompleted); ok {
			return sc, true
		}
	}
	return messages.SearchCompleted{}, false
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	mock := &MockSearchService{}

	view := NewView(s, km, mock, nil)

	require.NotNil(t, view)
	assert.False(t, view.Ready())
	assert.Equal(t, "", view.Query())
	assert.True(t, view.InputFocused())
	assert.Equal(t, 0, view.Generation())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
}

func TestView_WithContext(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	result := view.WithContext(ctx)

	assert.Equal(t, view, result)
	assert.Equal(t, ctx, view.ctx)
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	cmd := view.Init()

	// Blink command from input
	assert.NotNil(t, cmd)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.Ready())
	assert.Equal(t, 80, view.Width())
	assert.Equal(t, 24, view.Height())
}

func TestView_Typing_DispatchesSearch(t *testing.T) {
	searchCalled := false
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string) ([]domain.ResultEntry, error) {
			searchCalled = true
			assert.Equal(t, "docs", query)
			return testEntries(), nil
		},
	}
	view := NewView(nil, nil, mock, nil)

	cmd := typeRunes(view, "docs")

	require.NotNil(t, cmd)
	completed, ok := findSearchCompleted(collectMsgs(cmd))
	require.True(t, ok)
	assert.True(t, searchCalled)
	assert.Equal(t, "docs", completed.Query)
	assert.Equal(t, 1, completed.Generation)
	assert.Len(t, completed.Entries, 2)
}

func TestView_Typing_ShortQueryDoesNotDispatch(t *testing.T) {
	searchCalled := false
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string) ([]domain.ResultEntry, error) {
			searchCalled = true
			return testEntries(), nil
		},
	}
	view := NewView(nil, nil, mock, nil)

	// Three characters is at the threshold, not past it
	cmd := typeRunes(view, "doc")

	_, dispatched := findSearchCompleted(collectMsgs(cmd))
	assert.False(t, dispatched)
	assert.False(t, searchCalled)
	assert.Equal(t, "doc", view.Query())
}

func TestView_Typing_WhitespacePaddingIgnored(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string) ([]domain.ResultEntry, error) {
			assert.Equal(t, "docs", query)
			return nil, nil
		},
	}
	view := NewView(nil, nil, mock, nil)

	cmd := typeRunes(view, "  docs  ")

	require.NotNil(t, cmd)
	cmd()
}

func TestView_Backspace_BelowThresholdClearsResults(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	require.Len(t, view.Entries(), 2)
	view.SetQuery("docs")

	// Deleting down to three characters hides the results again
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	_, dispatched := findSearchCompleted(collectMsgs(cmd))
	assert.False(t, dispatched)
	assert.Empty(t, view.Entries())
	assert.Equal(t, "doc", view.Query())
}

func TestView_Update_SearchCompleted(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)

	entries := testEntries()
	msg := messages.SearchCompleted{Query: "docs", Entries: entries, Err: nil}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Len(t, view.Entries(), 2)
	// Live search never steals focus from the input
	assert.True(t, view.InputFocused())
}

func TestView_Update_SearchCompleted_WithError_DegradesToNoResults(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)

	// A query succeeds first, so results are on screen.
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	require.Len(t, view.Entries(), 2)

	// The next query breaks mid-scan. The display must show the same
	// empty state a genuine no-match query would, with nothing of the
	// failure surfacing as UI text and no stale entries left behind.
	err := errors.New("scan broke")
	msg := messages.SearchCompleted{Query: "docsi", Entries: nil, Err: err}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Empty(t, view.Entries())

	rendered := view.View()
	assert.Contains(t, rendered, domain.NoResultsText)
	assert.NotContains(t, rendered, "Error")
	assert.NotContains(t, rendered, "scan broke")

	// The failure is still recorded for diagnostics.
	assert.Error(t, view.Err())
}

func TestView_Update_SearchCompleted_StaleGenerationDiscarded(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.generation = 2

	msg := messages.SearchCompleted{Query: "old", Generation: 1, Entries: testEntries()}
	view.Update(msg)

	assert.Empty(t, view.Entries())
}

func TestView_StaleCompletion_DoesNotOverwriteNewer(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string) ([]domain.ResultEntry, error) {
			// Echo the query so results are attributable to their dispatch
			return []domain.ResultEntry{{Display: query, Link: "./x.html"}}, nil
		},
	}
	view := NewView(nil, nil, mock, nil)
	view.SetDimensions(80, 24)

	first := typeRunes(view, "docs")
	second := typeRunes(view, "ite") // now "docsite"
	require.NotNil(t, first)
	require.NotNil(t, second)

	firstMsg, ok := findSearchCompleted(collectMsgs(first))
	require.True(t, ok)
	secondMsg, ok := findSearchCompleted(collectMsgs(second))
	require.True(t, ok)

	// Newer completion lands first, older one arrives late
	view.Update(secondMsg)
	view.Update(firstMsg)

	require.Len(t, view.Entries(), 1)
	assert.Equal(t, "docsite", view.Entries()[0].Display)
}

func TestView_Update_ErrorOccurred_HidesResultsAndStaysQuiet(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})

	err := errors.New("something went wrong")
	msg := messages.ErrorOccurred{Err: err}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Error(t, view.Err())

	// The results panel is hidden and the failure never becomes UI text.
	assert.Empty(t, view.Entries())
	rendered := view.View()
	assert.NotContains(t, rendered, "Error")
	assert.NotContains(t, rendered, "something went wrong")
}

func TestView_Update_KeyEnter_MovesFocusToResults(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	assert.True(t, view.InputFocused())

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	view.Update(msg)

	assert.False(t, view.InputFocused())
}

func TestView_Update_KeyEnter_NoResultsStaysInInput(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := view.Update(msg)

	assert.Nil(t, cmd)
	assert.True(t, view.InputFocused())
}

func TestView_Update_KeyEsc_InInputMode_HidesView(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.SetQuery("docs")
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	_, cmd := view.Update(msg)

	require.NotNil(t, cmd)
	result := cmd()
	changed, ok := result.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewStatus, changed.View)

	// Dismissing drops the query and results
	assert.Equal(t, "", view.Query())
	assert.Empty(t, view.Entries())
}

func TestView_Update_KeyEsc_InResultsMode_ReturnsToInput(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	_, cmd := view.Update(msg)

	assert.Nil(t, cmd)
	assert.True(t, view.InputFocused())
	// Results survive; only the focus moved
	assert.Len(t, view.Entries(), 2)
}

func TestView_Update_KeySlash_RefocusesInput(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.SetQuery("docs")
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}
	view.Update(msg)

	assert.True(t, view.InputFocused())
	assert.Equal(t, "docs", view.Query())
}

func TestView_Update_KeyEnter_InResultsMode_OpensActionMenu(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	view.Update(msg)

	assert.NotNil(t, view.actionMenu)
	assert.True(t, view.actionMenu.visible)
	assert.Equal(t, 0, view.actionMenu.selected)
	assert.Len(t, view.actionMenu.actions, 3)
}

func TestView_Update_KeyEnter_InResultsMode_NoResults(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.focusInput = false

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	view.Update(msg)

	assert.Nil(t, view.actionMenu)
}

func TestView_Update_KeyUp(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	// Simulate being in results mode (after search)
	view.focusInput = false

	// Select second item first
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.SelectedIndex())

	msg := tea.KeyMsg{Type: tea.KeyUp}
	view.Update(msg)

	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_Update_KeyDown(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	// Simulate being in results mode (after search)
	view.focusInput = false

	msg := tea.KeyMsg{Type: tea.KeyDown}
	view.Update(msg)

	assert.Equal(t, 1, view.SelectedIndex())
}

func TestView_Update_KeyK(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	// Simulate being in results mode (after search)
	view.focusInput = false
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(msg)

	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_Update_KeyJ(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	// Simulate being in results mode (after search)
	view.focusInput = false

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(msg)

	assert.Equal(t, 1, view.SelectedIndex())
}

func TestView_Navigation_UpdatesLinkPreview(t *testing.T) {
	mockAction := &MockActionService{
		ResolveLinkFunc: func(entry *domain.ResultEntry) string {
			return "https://docs.example.com" + entry.Document.URL
		},
	}
	view := NewView(nil, nil, nil, mockAction)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	assert.Equal(t, "https://docs.example.com/getting-started.html", view.statusbar.Message())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, "https://docs.example.com/guide/configuration.html", view.statusbar.Message())
}

func TestView_LinkPreview_FallsBackToRawLink(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)

	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})

	assert.Equal(t, "./getting-started.html", view.statusbar.Message())
}

func TestView_Update_CharacterInput(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	view.Update(msg)

	assert.Equal(t, "a", view.Query())
}

func TestView_Update_Backspace(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetQuery("test")

	msg := tea.KeyMsg{Type: tea.KeyBackspace}
	view.Update(msg)

	assert.Equal(t, "tes", view.Query())
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	output := view.View()

	assert.Contains(t, output, "Initialising")
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)

	output := view.View()

	assert.Contains(t, output, "Docsift")
	assert.Contains(t, output, "Search")
}

func TestView_View_WithError(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.err = errors.New("test error")

	output := view.View()

	assert.Contains(t, output, "Error")
	assert.Contains(t, output, "test error")
}

func TestView_View_WithResults(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})

	output := view.View()

	assert.Contains(t, output, "Getting Started")
}

func TestView_View_WithActionMenu(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	output := view.View()

	assert.Contains(t, output, "Open in Browser")
	assert.Contains(t, output, "Copy Link")
	assert.Contains(t, output, "Cancel")
	assert.Contains(t, output, ">") // Selection indicator
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	view.SetDimensions(100, 50)

	assert.Equal(t, 100, view.Width())
	assert.Equal(t, 50, view.Height())
	assert.True(t, view.Ready())
}

func TestView_SetStyles(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	light := styles.StylesFor(domain.ThemeLight)

	view.SetStyles(light)

	assert.Equal(t, light, view.styles)
}

func TestView_SetStyles_NilIgnored(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	original := view.styles

	view.SetStyles(nil)

	assert.Equal(t, original, view.styles)
}

func TestView_Width(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.Equal(t, 80, view.Width()) // Default
}

func TestView_Height(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.Equal(t, 24, view.Height()) // Default
}

func TestView_Ready(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.False(t, view.Ready())

	view.SetDimensions(80, 24)
	assert.True(t, view.Ready())
}

func TestView_Query(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.Equal(t, "", view.Query())
}

func TestView_SetQuery(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	view.SetQuery("test query")

	assert.Equal(t, "test query", view.Query())
}

func TestView_Entries(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.Nil(t, view.Entries())
}

func TestView_SelectedIndex(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_SelectedEntry_Empty(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.Nil(t, view.SelectedEntry())
}

func TestView_SelectedEntry_WithResults(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})

	entry := view.SelectedEntry()

	require.NotNil(t, entry)
	assert.Equal(t, "Getting Started", entry.Display)
}

func TestView_Err(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.Nil(t, view.Err())
}

func TestView_ClearError(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.err = errors.New("some error")

	view.ClearError()

	assert.Nil(t, view.Err())
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.SetQuery("test query")
	view.Update(messages.SearchCompleted{Query: "test query", Entries: testEntries()})
	view.focusInput = false
	view.err = errors.New("test error")
	before := view.Generation()

	view.Reset()

	assert.True(t, view.InputFocused())
	assert.Equal(t, "", view.Query())
	assert.Empty(t, view.Entries())
	assert.Nil(t, view.Err())
	// In-flight completions for the dropped query must not resurface
	assert.Greater(t, view.Generation(), before)
}

func TestView_InputFocused(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	assert.True(t, view.InputFocused())

	view.focusInput = false
	assert.False(t, view.InputFocused())
}

func TestView_PerformSearch_NoService(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	cmd := typeRunes(view, "docs")

	require.NotNil(t, cmd)

	var errMsg messages.ErrorOccurred
	found := false
	for _, m := range collectMsgs(cmd) {
		if e, ok := m.(messages.ErrorOccurred); ok {
			errMsg = e
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, ErrNoSessionService, errMsg.Err)
}

func TestView_PerformSearch_ServiceError(t *testing.T) {
	expectedErr := errors.New("session not ready")
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string) ([]domain.ResultEntry, error) {
			return nil, expectedErr
		},
	}
	view := NewView(nil, nil, mock, nil)

	cmd := typeRunes(view, "docs")

	require.NotNil(t, cmd)

	completed, ok := findSearchCompleted(collectMsgs(cmd))
	require.True(t, ok)
	assert.Error(t, completed.Err)
}

// Action Menu Tests

func TestView_ActionMenu_NavigateDown(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, view.actionMenu.selected)

	// Navigate down
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.actionMenu.selected)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, view.actionMenu.selected)

	// Try to go past last item
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, view.actionMenu.selected)
}

func TestView_ActionMenu_NavigateUp(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 2

	// Navigate up
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, view.actionMenu.selected)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.actionMenu.selected)

	// Try to go before first item
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.actionMenu.selected)
}

func TestView_ActionMenu_NavigateWithVimKeys(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, view.actionMenu.selected)

	// Navigate down with j
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.actionMenu.selected)

	// Navigate up with k
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.actionMenu.selected)
}

func TestView_ActionMenu_Escape_ClosesMenu(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, view.actionMenu)

	// Press Escape
	view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, view.actionMenu)
}

func TestView_ActionMenu_SelectCancel(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 2 // Cancel

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, view.actionMenu)
}

func TestView_ActionMenu_OpenInBrowser_Success(t *testing.T) {
	openCalled := false
	mockAction := &MockActionService{
		OpenEntryFunc: func(ctx context.Context, entry *domain.ResultEntry) error {
			openCalled = true
			assert.Equal(t, "Getting Started", entry.Display)
			return nil
		},
	}

	view := NewView(nil, nil, nil, mockAction)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 0 // Open in Browser

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, view.actionMenu)
	assert.True(t, openCalled)
	assert.Contains(t, view.statusbar.Message(), "Opening")
}

func TestView_ActionMenu_OpenInBrowser_Error(t *testing.T) {
	expectedErr := errors.New("open failed")
	mockAction := &MockActionService{
		OpenEntryFunc: func(ctx context.Context, entry *domain.ResultEntry) error {
			return expectedErr
		},
	}

	view := NewView(nil, nil, nil, mockAction)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 0 // Open in Browser

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, view.actionMenu)
	assert.Contains(t, view.statusbar.Message(), "open failed")
}

func TestView_ActionMenu_OpenInBrowser_NoService(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 0 // Open in Browser

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, view.actionMenu)
}

func TestView_ActionMenu_CopyLink_Success(t *testing.T) {
	copyCalled := false
	mockAction := &MockActionService{
		CopyLinkFunc: func(ctx context.Context, entry *domain.ResultEntry) error {
			copyCalled = true
			assert.Equal(t, "./getting-started.html", entry.Link)
			return nil
		},
	}

	view := NewView(nil, nil, nil, mockAction)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 1 // Copy Link

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, view.actionMenu)
	assert.True(t, copyCalled)
	assert.Contains(t, view.statusbar.Message(), "copied")
}

func TestView_ActionMenu_CopyLink_Error(t *testing.T) {
	expectedErr := errors.New("copy failed")
	mockAction := &MockActionService{
		CopyLinkFunc: func(ctx context.Context, entry *domain.ResultEntry) error {
			return expectedErr
		},
	}

	view := NewView(nil, nil, nil, mockAction)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 1 // Copy Link

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, view.actionMenu)
	assert.Contains(t, view.statusbar.Message(), "copy failed")
}

func TestView_ActionMenu_CopyLink_NoService(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 1 // Copy Link

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, view.actionMenu)
}

func TestView_ActionMenu_ExecuteAction_NilEntry(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)

	// Manually create action menu with nil entry
	view.actionMenu = &ActionMenu{
		actions:  []string{"Open in Browser", "Copy Link", "Cancel"},
		selected: 0,
		visible:  true,
		entry:    nil,
	}

	// Press Enter
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Should close menu and do nothing
	assert.Nil(t, view.actionMenu)
}

func TestView_RenderActionMenu_NilMenu(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	output := view.renderActionMenu()

	assert.Equal(t, "", output)
}

func TestView_RenderActionMenu_WithSelection(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 1

	output := view.renderActionMenu()

	assert.Contains(t, output, "Open in Browser")
	assert.Contains(t, output, "Copy Link")
	assert.Contains(t, output, "Cancel")
}

// Edge cases and integration tests

func TestView_Update_ForwardsToComponents(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)

	// Generic message that should be forwarded to components
	type customMsg struct{}
	msg := customMsg{}

	updated, _ := view.Update(msg)

	assert.Equal(t, view, updated)
	// Message is forwarded to input and list components
}

func TestView_Update_SearchCompleted_ClearsError(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.err = errors.New("previous error")

	msg := messages.SearchCompleted{Query: "docs", Entries: testEntries(), Err: nil}
	view.Update(msg)

	assert.Nil(t, view.Err())
}

func TestView_ActionMenu_UnknownKey_DoesNothing(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	initialSelection := view.actionMenu.selected

	// Press unknown key
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	// Selection should not change
	assert.Equal(t, initialSelection, view.actionMenu.selected)
	assert.NotNil(t, view.actionMenu)
}

func TestView_Navigation_OnlyWorksInResultsMode(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	initialIndex := view.SelectedIndex()

	// In input mode j is just another character
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	assert.Equal(t, initialIndex, view.SelectedIndex())
	assert.Equal(t, "j", view.Query())
}

func TestView_SearchAfterDismissal_StartsFresh(t *testing.T) {
	mock := &MockSearchService{
		SearchFunc: func(ctx context.Context, query string) ([]domain.ResultEntry, error) {
			return testEntries(), nil
		},
	}
	view := NewView(nil, nil, mock, nil)
	view.SetDimensions(80, 24)

	// First search
	cmd := typeRunes(view, "docs")
	require.NotNil(t, cmd)
	view.Update(cmd())
	require.Len(t, view.Entries(), 2)

	// Dismiss the view
	view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", view.Query())
	assert.Empty(t, view.Entries())

	// Second search starts from a clean slate
	cmd = typeRunes(view, "site")
	require.NotNil(t, cmd)
	view.Update(cmd())
	assert.Len(t, view.Entries(), 2)
}

func TestView_WindowSizeMsg_SetsReady(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	assert.False(t, view.Ready())

	msg := tea.WindowSizeMsg{Width: 100, Height: 50}
	view.Update(msg)

	assert.True(t, view.Ready())
	assert.Equal(t, 100, view.Width())
	assert.Equal(t, 50, view.Height())
}

func TestView_ActionMenu_EnsuresCorrectBehavior(t *testing.T) {
	view := NewView(nil, nil, nil, nil)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Verify action menu state
	require.NotNil(t, view.actionMenu)
	assert.True(t, view.actionMenu.visible)
	assert.NotNil(t, view.actionMenu.entry)
	assert.Equal(t, "Getting Started", view.actionMenu.entry.Display)
	assert.Len(t, view.actionMenu.actions, 3)
	assert.Equal(t, "Open in Browser", view.actionMenu.actions[0])
	assert.Equal(t, "Copy Link", view.actionMenu.actions[1])
	assert.Equal(t, "Cancel", view.actionMenu.actions[2])
}

func TestView_ContextPropagation(t *testing.T) {
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("test"), "value")

	searchCalled := false
	mock := &MockSearchService{
		SearchFunc: func(receivedCtx context.Context, query string) ([]domain.ResultEntry, error) {
			searchCalled = true
			// Verify context is passed through
			val := receivedCtx.Value(contextKey("test"))
			assert.Equal(t, "value", val)
			return testEntries(), nil
		},
	}

	view := NewView(nil, nil, mock, nil).WithContext(ctx)

	cmd := typeRunes(view, "docs")
	require.NotNil(t, cmd)
	cmd() // Execute the search command

	assert.True(t, searchCalled)
}

func TestView_ActionMenu_ContextPropagation(t *testing.T) {
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("test"), "value")

	copyCalled := false
	mockAction := &MockActionService{
		CopyLinkFunc: func(receivedCtx context.Context, entry *domain.ResultEntry) error {
			copyCalled = true
			// Verify context is passed through
			val := receivedCtx.Value(contextKey("test"))
			assert.Equal(t, "value", val)
			return nil
		},
	}

	view := NewView(nil, nil, nil, mockAction).WithContext(ctx)
	view.SetDimensions(80, 24)
	view.Update(messages.SearchCompleted{Query: "docs", Entries: testEntries()})
	view.focusInput = false

	// Open action menu and select copy
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.actionMenu.selected = 1
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, copyCalled)
}
