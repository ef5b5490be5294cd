// Package status provides the landing view for the TUI, summarising
// the search index and offering the rebuild and theme controls.
package status

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/messages"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui/styles"
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
)

// View represents the index status view.
type View struct {
	styles          *styles.Styles
	sessionService  driving.SessionService
	settingsService driving.SettingsService
	ctx             context.Context

	state      domain.SessionState
	documents  int
	source     string
	storePath  string
	report     *domain.LoadReport
	rebuilding bool
	loaded     bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new status view.
func NewView(
	s *styles.Styles,
	sessionService driving.SessionService,
	settingsService driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		sessionService:  sessionService,
		settingsService: settingsService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the session status.
func (v *View) Init() tea.Cmd {
	return v.loadStatus()
}

// Update handles messages for the status view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.StatusLoaded:
		v.loaded = true
		v.state = msg.State
		v.documents = msg.Documents
		v.source = msg.Source
		v.storePath = msg.StorePath
		v.err = msg.Err
		return v, nil

	case messages.RebuildCompleted:
		v.rebuilding = false
		v.report = msg.Report
		v.err = msg.Err
		// Refresh the counts after the reload
		return v, v.loadStatus()

	case messages.ThemeChanged:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSearch}
			}

		case "r":
			if v.rebuilding {
				return v, nil
			}
			v.rebuilding = true
			v.err = nil
			v.report = nil
			return v, v.rebuild()

		case "t":
			return v, v.toggleTheme()
		}
	}

	return v, nil
}

// loadStatus queries the session for its current state.
func (v *View) loadStatus() tea.Cmd {
	return func() tea.Msg {
		if v.sessionService == nil {
			return messages.StatusLoaded{Err: ErrNoSessionService}
		}

		state := v.sessionService.State()
		count, err := v.sessionService.DocumentCount(v.ctx)
		if err != nil {
			return messages.StatusLoaded{State: state, Err: err}
		}

		source := "not configured"
		if v.settingsService != nil {
			if settings, err := v.settingsService.Get(); err == nil {
				switch {
				case settings.Site.BaseURL != "":
					source = settings.Site.BaseURL
				case settings.Site.Dir != "":
					source = settings.Site.Dir
				}
			}
		}

		return messages.StatusLoaded{
			State:     state,
			Documents: count,
			Source:    source,
			StorePath: v.sessionService.StorePath(),
		}
	}
}

// rebuild drops and reloads the index.
func (v *View) rebuild() tea.Cmd {
	return func() tea.Msg {
		if v.sessionService == nil {
			return messages.RebuildCompleted{Err: ErrNoSessionService}
		}

		report, err := v.sessionService.Rebuild(v.ctx)
		return messages.RebuildCompleted{Report: report, Err: err}
	}
}

// toggleTheme flips the persisted theme and reports the new one.
func (v *View) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.ThemeChanged{Err: ErrNoSettingsService}
		}

		settings, err := v.settingsService.Get()
		if err != nil {
			return messages.ThemeChanged{Err: err}
		}

		next := settings.UI.Theme.Toggled()
		if err := v.settingsService.SetTheme(next); err != nil {
			return messages.ThemeChanged{Theme: settings.UI.Theme, Err: err}
		}
		return messages.ThemeChanged{Theme: next}
	}
}

// View renders the status view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	// Title
	title := v.styles.Title.Render("Docsift")
	b.WriteString(title)
	b.WriteString("\n\n")

	// Subtitle
	subtitle := v.styles.Muted.Render("Documentation Search")
	b.WriteString(subtitle)
	b.WriteString("\n\n")

	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("Loading status..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.renderStatusLine("State", v.renderState()))
	b.WriteString(v.renderStatusLine("Documents", fmt.Sprintf("%d", v.documents)))
	b.WriteString(v.renderStatusLine("Source", v.source))
	b.WriteString(v.renderStatusLine("Store", v.storePath))

	if v.rebuilding {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render("Rebuilding index..."))
		b.WriteString("\n")
	} else if v.report != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.renderReport()))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	// Footer with keybindings
	b.WriteString("\n")
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[/] Search  [r] Rebuild  [t] Theme  [?] Help  [q] Quit")
	b.WriteString(footer)

	return b.String()
}

// renderStatusLine renders a single aligned label/value line.
func (v *View) renderStatusLine(label, value string) string {
	styled := v.styles.Muted.Render(fmt.Sprintf("%-11s", label))
	return "  " + styled + v.styles.Normal.Render(value) + "\n"
}

// renderState renders the session state with its severity colour.
func (v *View) renderState() string {
	switch v.state {
	case domain.SessionReady:
		return v.styles.Success.Render(v.state.String())
	case domain.SessionFailed:
		return v.styles.Error.Render(v.state.String())
	default:
		return v.styles.Warning.Render(v.state.String())
	}
}

// renderReport summarises the last rebuild.
func (v *View) renderReport() string {
	if v.report == nil {
		return ""
	}
	line := fmt.Sprintf("Reloaded %d documents", v.report.Inserted)
	if v.report.Failed > 0 {
		line += fmt.Sprintf(" (%d failed)", v.report.Failed)
	}
	return line
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SetStyles swaps the styling, used when the theme changes.
func (v *View) SetStyles(st *styles.Styles) {
	if st != nil {
		v.styles = st
	}
}

// Rebuilding reports whether a rebuild is in flight.
func (v *View) Rebuilding() bool {
	return v.rebuilding
}

// Loaded reports whether the status has been fetched.
func (v *View) Loaded() bool {
	return v.loaded
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
