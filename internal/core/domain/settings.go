package domain

const unknownDescription = "Unknown"

// Theme identifies the colour palette used by the interactive surface.
// The preference lives alongside search settings but is independent of
// the search subsystem itself.
type Theme string

// Available themes.
const (
	// ThemeDark is the default dark-background palette.
	ThemeDark Theme = "dark"

	// ThemeLight is a light-background palette.
	ThemeLight Theme = "light"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// Toggled returns the opposite palette.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeDark:
		return "Dark (default palette)"
	case ThemeLight:
		return "Light (bright background)"
	default:
		return unknownDescription
	}
}

// SiteSettings locate the documentation site whose index is loaded.
// Exactly one of BaseURL or Dir is consulted; BaseURL wins when both
// are set.
type SiteSettings struct {
	// BaseURL is the root of the deployed site. When set, the index
	// document is fetched over HTTP relative to this URL.
	BaseURL string

	// Dir is a local site root. Used when BaseURL is empty.
	Dir string
}

// IsConfigured returns true if an index location is set.
func (s SiteSettings) IsConfigured() bool {
	return s.BaseURL != "" || s.Dir != ""
}

// StorageSettings hold the persistent store location.
type StorageSettings struct {
	// Dir is the directory holding the search database.
	// Empty selects the default under the user home directory.
	Dir string
}

// UISettings hold interactive-surface preferences.
type UISettings struct {
	// Theme selects the colour palette.
	Theme Theme
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Site locates the documentation site.
	Site SiteSettings

	// Storage locates the persistent store.
	Storage StorageSettings

	// UI holds interactive-surface preferences.
	UI UISettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The site location is left unconfigured; users must point docsift at
// a site before the first load.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		UI: UISettings{
			Theme: ThemeDark,
		},
	}
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{
		ThemeDark,
		ThemeLight,
	}
}
