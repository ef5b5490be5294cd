package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/docsift-cli/internal/adapters/driving/tui"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
	"github.com/meridian-labs/docsift-cli/internal/logger"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	SessionService  driving.SessionService
	ActionService   driving.ResultActionService
	SettingsService driving.SettingsService
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Docsift.
Running docsift with no command does the same thing.

Results appear as you type once the query is long enough. The selected
result's link target is shown in the status bar.

Controls:
  /        - Open search
  (type)   - Search as you type
  Enter    - Jump to the results / open the selected result
  ↑/k, ↓/j - Navigate results
  Esc      - Back / Dismiss search
  r        - Rebuild the index
  t        - Toggle the theme
  ?        - Help
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Build ports from configuration, falling back to the package
	// services wired by the composition root.
	ports := &tui.Ports{
		Session:  sessionService,
		Action:   actionService,
		Settings: settingsService,
	}
	if tuiConfig != nil {
		ports.Session = tuiConfig.SessionService
		ports.Action = tuiConfig.ActionService
		ports.Settings = tuiConfig.SettingsService
	}

	// Open the session before handing it over. A failed open leaves
	// the session in its failed state; the TUI shows that state and
	// rejects queries rather than refusing to start.
	if ports.Session != nil {
		if err := ports.Session.Open(cmd.Context()); err != nil {
			logger.Warn("Session open failed: %v", err)
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
