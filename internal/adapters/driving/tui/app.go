package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/messages"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/styles"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/views/search"
	statusview "github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/views/status"
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles for the active theme.
	styles *styles.Styles

	// theme is the active theme.
	theme domain.Theme

	// statusView is the landing view summarising the index.
	statusView *statusview.View

	// searchView is the search view component.
	searchView *search.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	theme := domain.ThemeDark
	if settings, err := ports.Settings.Get(); err == nil {
		theme = settings.UI.Theme
	}

	s := styles.StylesFor(theme)
	statusView := statusview.NewView(s, ports.Session, ports.Settings)
	searchView := search.NewView(s, nil, ports.Session, ports.Action)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		theme:       theme,
		statusView:  statusView,
		searchView:  searchView,
		currentView: messages.ViewStatus, // Start on the status view
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.statusView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("docsift - Documentation Search"),
		a.statusView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.statusView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewStatus:
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "?":
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.statusView, cmd = a.statusView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewHelp:
			// Esc or q from help goes back to the status view
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewStatus
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.StatusLoaded, messages.RebuildCompleted:
		a.statusView, cmd = a.statusView.Update(msg)
		return a, cmd

	case messages.ThemeChanged:
		if msg.Err == nil {
			a.applyTheme(msg.Theme)
		}
		a.statusView, cmd = a.statusView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewStatus:
			// Refresh the counts on return
			return a, a.statusView.Init()
		case messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
			return a, cmd
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewStatus:
		a.statusView, cmd = a.statusView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// applyTheme switches the active theme and restyles every view.
func (a *App) applyTheme(theme domain.Theme) {
	if !theme.IsValid() || theme == a.theme {
		return
	}
	a.theme = theme
	a.styles = styles.StylesFor(theme)
	a.statusView.SetStyles(a.styles)
	a.searchView.SetStyles(a.styles)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewStatus:
		return a.statusView.View()
	default:
		return a.statusView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Status
  ctrl+c      Quit

Status:
  /           Open search
  r           Rebuild the index
  t           Toggle light/dark theme
  q           Quit

Search:
  (type)      Results appear as you type
  enter       Jump to the results
  esc         Back (results, then status)

Results:
  j/k, ↑/↓    Navigate results
  enter       Open actions (browser, copy link)
  /           Back to typing

[esc] back to status`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Entries returns the current search results.
func (a *App) Entries() []domain.ResultEntry {
	return a.searchView.Entries()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Theme returns the active theme.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
}
