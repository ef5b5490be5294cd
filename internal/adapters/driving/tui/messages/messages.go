// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SearchCompleted carries search results back to the model. Generation
// identifies which dispatch produced the results so stale completions
// can be discarded after the input has moved on.
type SearchCompleted struct {
	Query      string
	Generation int
	Entries    []domain.ResultEntry
	Err        error
}

// SearchCleared is sent when the query drops at or below the minimum
// length and any visible results must go away.
type SearchCleared struct{}

// EntryActivated is sent when a result entry is chosen from the list.
type EntryActivated struct {
	Entry domain.ResultEntry
}

// ActionCompleted signals a result action (open, copy) finished.
type ActionCompleted struct {
	Action string
	Err    error
}

// RebuildCompleted signals an index rebuild finished.
type RebuildCompleted struct {
	Report *domain.LoadReport
	Err    error
}

// StatusLoaded carries the session diagnostics for the status view.
type StatusLoaded struct {
	State     domain.SessionState
	Documents int
	Source    string
	StorePath string
	Err       error
}

// ThemeChanged signals the colour theme was switched.
type ThemeChanged struct {
	Theme domain.Theme
	Err   error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewStatus is the landing view with session diagnostics.
	ViewStatus ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewStatus:
		return "status"
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
