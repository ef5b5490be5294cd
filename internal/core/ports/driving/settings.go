package driving

import "github.com/meridian-labs/docsift-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetTheme updates the interactive-surface theme.
	SetTheme(theme domain.Theme) error

	// SetSiteBaseURL points docsift at a deployed site root.
	SetSiteBaseURL(url string) error

	// SetSiteDir points docsift at a local site build directory.
	SetSiteDir(dir string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
