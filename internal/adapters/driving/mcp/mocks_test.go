package mcp

import (
	"context"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	entries   []domain.ResultEntry
	state     domain.SessionState
	documents int
	storePath string
	err       error
}

func (m *mockSessionService) Search(_ context.Context, _ string) ([]domain.ResultEntry, error) {
	return m.entries, m.err
}

func (m *mockSessionService) Open(_ context.Context) error {
	return m.err
}

func (m *mockSessionService) State() domain.SessionState {
	return m.state
}

func (m *mockSessionService) Ready() bool {
	return m.state == domain.SessionReady
}

func (m *mockSessionService) DocumentCount(_ context.Context) (int, error) {
	return m.documents, m.err
}

func (m *mockSessionService) Rebuild(_ context.Context) (*domain.LoadReport, error) {
	return &domain.LoadReport{}, m.err
}

func (m *mockSessionService) ID() string {
	return "mcp-test-session"
}

func (m *mockSessionService) StorePath() string {
	return m.storePath
}

func (m *mockSessionService) Close() error {
	return nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.settings != nil || m.err != nil {
		return m.settings, m.err
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) SetTheme(_ domain.Theme) error {
	return m.err
}

func (m *mockSettingsService) SetSiteBaseURL(_ string) error {
	return m.err
}

func (m *mockSettingsService) SetSiteDir(_ string) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
