package mcp

import (
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session answers queries and reports index status.
	Session driving.SessionService

	// Settings exposes the site configuration. Optional; without it the
	// config resource reports defaults.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}
