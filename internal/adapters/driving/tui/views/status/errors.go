package status

import "errors"

// Error definitions for the status view.
var (
	// ErrNoSessionService indicates that no session service was provided.
	ErrNoSessionService = errors.New("session service is required")

	// ErrNoSettingsService indicates that no settings service was provided.
	ErrNoSettingsService = errors.New("settings service is required")
)
