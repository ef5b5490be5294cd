package services

import (
	"fmt"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySiteBaseURL = "site.base_url"
	keySiteDir     = "site.dir"
	keyStorageDir  = "storage.dir"
	keyUITheme     = "ui.theme"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Site: domain.SiteSettings{
			BaseURL: s.configStore.GetString(keySiteBaseURL), // No default - a site must be configured explicitly
			Dir:     s.configStore.GetString(keySiteDir),
		},
		Storage: domain.StorageSettings{
			Dir: s.configStore.GetString(keyStorageDir), // Empty means the store's own default location
		},
		UI: domain.UISettings{
			Theme: s.getTheme(defaults.UI.Theme),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save site settings
	if err := s.configStore.Set(keySiteBaseURL, settings.Site.BaseURL); err != nil {
		return fmt.Errorf("save site base_url: %w", err)
	}
	if err := s.configStore.Set(keySiteDir, settings.Site.Dir); err != nil {
		return fmt.Errorf("save site dir: %w", err)
	}

	// Save storage settings
	if err := s.configStore.Set(keyStorageDir, settings.Storage.Dir); err != nil {
		return fmt.Errorf("save storage dir: %w", err)
	}

	// Save UI settings
	if err := s.configStore.Set(keyUITheme, settings.UI.Theme.String()); err != nil {
		return fmt.Errorf("save ui theme: %w", err)
	}

	return nil
}

// SetTheme updates the UI theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("invalid theme: %s", theme)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.UI.Theme = theme

	return s.Save(settings)
}

// SetSiteBaseURL configures the remote site to index.
func (s *SettingsService) SetSiteBaseURL(url string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Site.BaseURL = url

	return s.Save(settings)
}

// SetSiteDir configures the local site directory to index.
func (s *SettingsService) SetSiteDir(dir string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Site.Dir = dir

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	val := s.configStore.GetString(keyUITheme)
	if val == "" {
		return defaultVal
	}
	theme := domain.Theme(val)
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}
