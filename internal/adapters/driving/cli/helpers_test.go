package cli

import (
	"context"
	"errors"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// mockSessionService is a configurable driving.SessionService for
// command tests. The zero value behaves as a ready session over two
// documents.
type mockSessionService struct {
	SearchFunc  func(ctx context.Context, query string) ([]domain.ResultEntry, error)
	OpenFunc    func(ctx context.Context) error
	RebuildFunc func(ctx context.Context) (*domain.LoadReport, error)

	state     domain.SessionState
	documents int
	storePath string
}

func (m *mockSessionService) Search(ctx context.Context, query string) ([]domain.ResultEntry, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return sampleEntries(), nil
}

func (m *mockSessionService) Open(ctx context.Context) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx)
	}
	return nil
}

func (m *mockSessionService) State() domain.SessionState {
	if m.state != domain.SessionIdle {
		return m.state
	}
	return domain.SessionReady
}

func (m *mockSessionService) Ready() bool {
	return m.State() == domain.SessionReady
}

func (m *mockSessionService) DocumentCount(_ context.Context) (int, error) {
	if m.documents != 0 {
		return m.documents, nil
	}
	return 2, nil
}

func (m *mockSessionService) Rebuild(ctx context.Context) (*domain.LoadReport, error) {
	if m.RebuildFunc != nil {
		return m.RebuildFunc(ctx)
	}
	return &domain.LoadReport{Inserted: 2}, nil
}

func (m *mockSessionService) ID() string {
	return "cli-test-session"
}

func (m *mockSessionService) StorePath() string {
	if m.storePath != "" {
		return m.storePath
	}
	return "/tmp/docsift-test/index.db"
}

func (m *mockSessionService) Close() error {
	return nil
}

// mockSessionServiceError fails every search.
type mockSessionServiceError struct {
	mockSessionService
}

func (m *mockSessionServiceError) Search(_ context.Context, _ string) ([]domain.ResultEntry, error) {
	return nil, errors.New("engine unavailable")
}

// mockSettingsService is an in-memory driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	saved    bool
	err      error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings()}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	settings := m.settings
	return &settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	if m.err != nil {
		return m.err
	}
	m.settings = *settings
	m.saved = true
	return nil
}

func (m *mockSettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return errors.New("invalid theme: " + string(theme))
	}
	m.settings.UI.Theme = theme
	m.saved = true
	return m.err
}

func (m *mockSettingsService) SetSiteBaseURL(url string) error {
	m.settings.Site.BaseURL = url
	m.saved = true
	return m.err
}

func (m *mockSettingsService) SetSiteDir(dir string) error {
	m.settings.Site.Dir = dir
	m.saved = true
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockActionService is a no-op driving.ResultActionService.
type mockActionService struct{}

func (m *mockActionService) OpenEntry(_ context.Context, _ *domain.ResultEntry) error {
	return nil
}

func (m *mockActionService) CopyLink(_ context.Context, _ *domain.ResultEntry) error {
	return nil
}

func (m *mockActionService) ResolveLink(entry *domain.ResultEntry) string {
	if entry == nil {
		return ""
	}
	return entry.Link
}

func sampleEntries() []domain.ResultEntry {
	return []domain.ResultEntry{
		{
			Document: domain.Document{
				URL:     "/getting-started.html",
				Title:   "Getting Started",
				Content: "Install the package and run the quick start.",
			},
			Link:    "./getting-started.html",
			Display: "Getting Started",
			Snippet: "Install the package and run the quick start....",
		},
		{
			Document: domain.Document{
				URL:     "/guide/configuration.html",
				Title:   "Configuration",
				Content: "Configure the site root and storage location.",
			},
			Link:    "./guide/configuration.html",
			Display: "Configuration",
			Snippet: "Configure the site root and storage location....",
		},
	}
}

// setupTestServices wires mock services into the package and returns
// a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldSession := sessionService
	oldMarkup := markupSessionService
	oldSettings := settingsService
	oldAction := actionService

	sessionService = &mockSessionService{}
	markupSessionService = nil
	settingsService = newMockSettingsService()
	actionService = &mockActionService{}

	return func() {
		sessionService = oldSession
		markupSessionService = oldMarkup
		settingsService = oldSettings
		actionService = oldAction
	}
}
