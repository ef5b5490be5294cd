// Package tui provides an interactive terminal user interface for docsift.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns the search index lifecycle and serves queries.
	Session driving.SessionService

	// Action provides actions on search results.
	Action driving.ResultActionService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionService,
	action driving.ResultActionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Session:  session,
		Action:   action,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Action == nil {
		return ErrMissingActionService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
