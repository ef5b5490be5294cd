// Package cli provides the docsift command tree. Commands depend on
// package-level driving services wired in by the composition root
// before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
	"github.com/meridian-labs/docsift-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

// verbose mirrors the --verbose persistent flag.
var verbose bool

// Driving services wired by the composition root.
var (
	sessionService       driving.SessionService
	markupSessionService driving.SessionService
	settingsService      driving.SettingsService
	actionService        driving.ResultActionService
)

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Offline full-text search for static documentation sites",
	Long: `Docsift indexes the pages of a static documentation site and answers
full-text queries against that index, entirely offline.

Configure a site with 'docsift config', load it with 'docsift rebuild',
then search from the terminal UI (the default), the 'search' command,
or an MCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services bundles the driving ports the commands depend on.
type Services struct {
	// Session answers queries for the interactive surfaces; its
	// entries carry plain-text snippets.
	Session driving.SessionService

	// MarkupSession serves the MCP surface; its entries carry <mark>
	// highlight markup. Falls back to Session when nil.
	MarkupSession driving.SessionService

	// Settings exposes the site configuration.
	Settings driving.SettingsService

	// Action resolves and follows result links.
	Action driving.ResultActionService
}

// SetServices wires the driving services into the command tree.
func SetServices(services *Services) {
	if services == nil {
		return
	}
	sessionService = services.Session
	markupSessionService = services.MarkupSession
	settingsService = services.Settings
	actionService = services.Action
}

// SetVersion overrides the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging")
}
