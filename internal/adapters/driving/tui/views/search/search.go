// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/components/input"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/components/list"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/components/status"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/keymap"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/messages"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/styles"
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
	"github.com/meridian-labs/docsift-cli/internal/logger"
)

// ActionMenu represents a simple action selection overlay.
type ActionMenu struct {
	actions  []string
	selected int
	visible  bool
	entry    *domain.ResultEntry
}

// View represents the search view with input, results list, and status bar.
// Queries dispatch as the user types: every change to the input runs a
// search once the query is long enough, and shorter input clears the
// results again. Each dispatch carries a generation number so completions
// for abandoned queries are discarded instead of overwriting newer ones.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	actionService driving.ResultActionService
	ctx           context.Context

	width      int
	height     int
	ready      bool
	err        error
	generation int
	focusInput bool // true = input mode (typing), false = results mode (navigating)
	actionMenu *ActionMenu
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	actionService driving.ResultActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		actionService: actionService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		ready:         false,
		generation:    0,
		focusInput:    true, // Start in input mode
		actionMenu:    nil,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		// Failures stay on the diagnostic channel, never in the
		// display; the results panel just goes away.
		logger.Warn("Search view error: %v", msg.Err)
		v.err = msg.Err
		v.list.Clear()
		v.statusbar.Clear()
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// If action menu is visible, handle its keys
	if v.actionMenu != nil && v.actionMenu.visible {
		return v.handleActionMenuKey(msg)
	}

	if msg.Type == tea.KeyEsc {
		if !v.focusInput {
			// Back to the input from result navigation.
			v.focusInput = true
			v.input.Focus()
			return v, nil
		}
		// Dismissing the view drops the query and results, so it
		// reopens in a fresh state.
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewStatus}
		}
	}

	// Enter in input mode hands focus to the results
	if msg.Type == tea.KeyEnter && v.focusInput {
		if v.list.Count() == 0 {
			return v, nil
		}
		v.focusInput = false
		v.input.Blur()
		v.updateLinkPreview()
		return v, nil
	}

	// Input mode: keys go to the input, and any change to the value
	// dispatches or clears the search.
	if v.focusInput {
		before := v.input.Value()
		var inputCmd tea.Cmd
		v.input, inputCmd = v.input.Update(msg)
		if v.input.Value() == before {
			return v, inputCmd
		}
		return v, tea.Batch(inputCmd, v.dispatch())
	}

	// Results mode: handle Enter to open action menu
	if msg.Type == tea.KeyEnter {
		entry := v.list.SelectedEntry()
		if entry != nil {
			v.actionMenu = &ActionMenu{
				actions:  []string{"Open in Browser", "Copy Link", "Cancel"},
				selected: 0,
				visible:  true,
				entry:    entry,
			}
		}
		return v, nil
	}

	// Results mode: handle navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		v.updateLinkPreview()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		v.updateLinkPreview()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		v.updateLinkPreview()
		return v, nil
	case "j":
		v.list.MoveDown()
		v.updateLinkPreview()
		return v, nil
	case "/":
		// Back to typing, keeping the current query
		v.focusInput = true
		v.input.Focus()
		return v, nil
	}

	return v, nil
}

// handleActionMenuKey processes keyboard input when action menu is visible.
func (v *View) handleActionMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		if v.actionMenu.selected > 0 {
			v.actionMenu.selected--
		}
		return v, nil
	case tea.KeyDown:
		if v.actionMenu.selected < len(v.actionMenu.actions)-1 {
			v.actionMenu.selected++
		}
		return v, nil
	case tea.KeyEnter:
		action := v.actionMenu.actions[v.actionMenu.selected]
		entry := v.actionMenu.entry
		v.actionMenu = nil // Close menu
		return v.executeAction(action, entry)
	case tea.KeyEsc:
		v.actionMenu = nil // Close menu
		return v, nil
	default:
		// Handle other keys
	}

	// Handle vim-style navigation in action menu
	switch msg.String() {
	case "k":
		if v.actionMenu.selected > 0 {
			v.actionMenu.selected--
		}
		return v, nil
	case "j":
		if v.actionMenu.selected < len(v.actionMenu.actions)-1 {
			v.actionMenu.selected++
		}
		return v, nil
	}

	return v, nil
}

// executeAction performs the selected action on a search result.
func (v *View) executeAction(action string, entry *domain.ResultEntry) (*View, tea.Cmd) {
	if entry == nil {
		return v, nil
	}

	switch action {
	case "Open in Browser":
		if v.actionService != nil {
			err := v.actionService.OpenEntry(v.ctx, entry)
			if err != nil {
				v.statusbar.SetMessage("Open: " + err.Error())
			} else {
				v.statusbar.SetMessage("Opening in browser...")
			}
		} else {
			v.statusbar.SetMessage("Open not available")
		}
	case "Copy Link":
		if v.actionService != nil {
			err := v.actionService.CopyLink(v.ctx, entry)
			if err != nil {
				v.statusbar.SetMessage("Copy: " + err.Error())
			} else {
				v.statusbar.SetMessage("Link copied")
			}
		} else {
			v.statusbar.SetMessage("Copy not available")
		}
	case "Cancel":
		// Do nothing, menu is already closed
	}

	return v, nil
}

// dispatch reacts to an input change: long enough queries start a
// search, anything shorter hides the results again. The generation
// bump invalidates completions still in flight for the old input.
func (v *View) dispatch() tea.Cmd {
	v.generation++
	query := domain.NormalizeQuery(v.input.Value())
	if !domain.Dispatchable(query) {
		v.list.Clear()
		v.err = nil
		v.statusbar.Clear()
		return nil
	}

	v.statusbar.SetState(status.StateSearching)
	return v.performSearch(query, v.generation)
}

// performSearch executes a search and returns results.
func (v *View) performSearch(query string, generation int) tea.Cmd {
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSessionService}
		}

		entries, err := v.searchService.Search(v.ctx, query)
		return messages.SearchCompleted{
			Query:      query,
			Generation: generation,
			Entries:    entries,
			Err:        err,
		}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	// A completion for anything but the latest dispatch is stale;
	// the input has changed since and newer results are on the way.
	if msg.Generation != v.generation {
		return
	}

	if msg.Err != nil {
		// A broken query degrades to the same empty state a genuine
		// no-match query shows; the error goes to the diagnostic
		// channel only.
		logger.Warn("Search for %q failed: %v", msg.Query, msg.Err)
		v.err = msg.Err
		v.list.ShowResults(nil, msg.Query)
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetResultCount(0)
		v.statusbar.SetMessage("")
		return
	}

	v.err = nil
	v.list.ShowResults(msg.Entries, msg.Query)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Entries))
	v.updateLinkPreview()
}

// updateLinkPreview shows the selected entry's resolved target in the
// status bar, the way a browser previews a hovered link.
func (v *View) updateLinkPreview() {
	entry := v.list.SelectedEntry()
	if entry == nil {
		v.statusbar.SetMessage("")
		return
	}

	link := entry.Link
	if v.actionService != nil {
		if resolved := v.actionService.ResolveLink(entry); resolved != "" {
			link = resolved
		}
	}
	v.statusbar.SetMessage(link)
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	// Header
	header := v.styles.Title.Render("Docsift")
	sections = append(sections, header, "")

	// Search input
	inputView := v.input.View()
	sections = append(sections, inputView, "")

	// Results list
	listView := v.list.View()
	sections = append(sections, listView)

	// Action menu overlay (if visible)
	if v.actionMenu != nil && v.actionMenu.visible {
		sections = append(sections, "")
		menuView := v.renderActionMenu()
		sections = append(sections, menuView)
	}

	// Status bar at bottom
	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	if v.actionMenu == nil {
		return ""
	}

	lines := make([]string, 0, len(v.actionMenu.actions))
	for i, action := range v.actionMenu.actions {
		indicator := "  "
		if i == v.actionMenu.selected {
			indicator = "> "
		}

		var line string
		if i == v.actionMenu.selected {
			line = v.styles.Selected.Render(indicator + action)
		} else {
			line = v.styles.Normal.Render(indicator + action)
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")

	// Wrap in a bordered box
	menuStyle := v.styles.Border.
		Padding(0, 1)

	return menuStyle.Render(content)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// SetStyles swaps the styling on the view and its components, used
// when the theme changes.
func (v *View) SetStyles(st *styles.Styles) {
	if st == nil {
		return
	}
	v.styles = st
	v.input.SetStyles(st)
	v.list.SetStyles(st)
	v.statusbar.SetStyles(st)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query without dispatching.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Generation returns the current dispatch generation.
func (v *View) Generation() int {
	return v.generation
}

// Entries returns the current search results.
func (v *View) Entries() []domain.ResultEntry {
	return v.list.Entries()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedEntry returns the currently selected result.
func (v *View) SelectedEntry() *domain.ResultEntry {
	return v.list.SelectedEntry()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.generation++
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.Clear()
	v.err = nil
	v.actionMenu = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(0)
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
