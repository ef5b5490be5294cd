package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// Configuration keys accepted by 'config get' and 'config set'.
const (
	cfgKeySiteBaseURL = "site.base_url"
	cfgKeySiteDir     = "site.dir"
	cfgKeyStorageDir  = "storage.dir"
	cfgKeyUITheme     = "ui.theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docsift configuration",
	Long: `View and change the docsift configuration.

Keys:
  site.base_url  URL of the documentation site to index
  site.dir       local directory of the built site (alternative to site.base_url)
  storage.dir    directory holding the index database
  ui.theme       terminal UI theme: dark or light`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Configuration")
	cmd.Println("=============")
	cmd.Println()
	cmd.Printf("  %-14s %s\n", cfgKeySiteBaseURL, orUnset(settings.Site.BaseURL))
	cmd.Printf("  %-14s %s\n", cfgKeySiteDir, orUnset(settings.Site.Dir))
	cmd.Printf("  %-14s %s\n", cfgKeyStorageDir, orDefault(settings.Storage.Dir))
	cmd.Printf("  %-14s %s\n", cfgKeyUITheme, settings.UI.Theme)

	if !settings.Site.IsConfigured() {
		cmd.Println()
		cmd.Println("No site is configured; the index stays empty until one is set.")
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	key := args[0]
	switch key {
	case cfgKeySiteBaseURL:
		cmd.Println(settings.Site.BaseURL)
	case cfgKeySiteDir:
		cmd.Println(settings.Site.Dir)
	case cfgKeyStorageDir:
		cmd.Println(settings.Storage.Dir)
	case cfgKeyUITheme:
		cmd.Println(settings.UI.Theme)
	default:
		return unknownKeyError(key)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]

	var err error
	switch key {
	case cfgKeySiteBaseURL:
		err = settingsService.SetSiteBaseURL(value)
	case cfgKeySiteDir:
		err = settingsService.SetSiteDir(value)
	case cfgKeyStorageDir:
		err = setStorageDir(value)
	case cfgKeyUITheme:
		err = settingsService.SetTheme(domain.Theme(value))
	default:
		return unknownKeyError(key)
	}
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)

	if key == cfgKeySiteBaseURL || key == cfgKeySiteDir {
		cmd.Println("Run 'docsift rebuild' to load the index from the new site.")
	}

	return nil
}

// setStorageDir goes through Save since the settings service has no
// dedicated setter for the storage location.
func setStorageDir(dir string) error {
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	settings.Storage.Dir = dir
	return settingsService.Save(settings)
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown key %q (known keys: %s, %s, %s, %s)",
		key, cfgKeySiteBaseURL, cfgKeySiteDir, cfgKeyStorageDir, cfgKeyUITheme)
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func orDefault(value string) string {
	if value == "" {
		return "(default)"
	}
	return value
}
