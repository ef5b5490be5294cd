package main

import (
	"fmt"
	"os"

	"github.com/meridian-labs/docsift-cli/internal/adapters/driven/config/file"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driven/fetch"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driven/render"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driven/storage/sqlite"
	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/cli"
	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
	"github.com/meridian-labs/docsift-cli/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the adapters to the core services and hands control to the
// command tree. Sessions are constructed here but not opened; each
// command opens the one it uses, so a plain 'docsift version' never
// touches the index.
func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.Storage.Dir)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}

	fetcher := indexFetcher(settings)

	// Both sessions run over the one store handle. The interactive
	// session keeps snippets plain, since the TUI styles matches
	// itself; the markup session wraps them in <mark> for the MCP
	// surface. Closing the interactive session closes the shared
	// store.
	session := services.NewSearchSession(store, fetcher,
		services.NewEntryBuilder(render.NewNullHighlighter()))
	markupSession := services.NewSearchSession(store, fetcher,
		services.NewEntryBuilder(render.NewHTMLHighlighter()))
	defer session.Close()

	actionService := services.NewResultActionService(settingsService)

	cli.SetServices(&cli.Services{
		Session:       session,
		MarkupSession: markupSession,
		Settings:      settingsService,
		Action:        actionService,
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// indexFetcher selects the fetcher matching the configured site:
// remote sites load over HTTP, local builds straight off disk. An
// unconfigured site gets no fetcher, so its index stays empty.
func indexFetcher(settings *domain.AppSettings) driven.IndexFetcher {
	switch {
	case settings.Site.BaseURL != "":
		return fetch.NewHTTPFetcher(fetch.HTTPConfig{BaseURL: settings.Site.BaseURL})
	case settings.Site.Dir != "":
		return fetch.NewFSFetcher(settings.Site.Dir)
	default:
		return nil
	}
}
