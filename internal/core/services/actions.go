package services

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on search results.
type ResultActionService struct {
	settings driving.SettingsService
}

// NewResultActionService creates a new result action service.
func NewResultActionService(settings driving.SettingsService) *ResultActionService {
	return &ResultActionService{
		settings: settings,
	}
}

// OpenEntry opens the result's document in the default browser or file
// handler, the way following a rendered link would.
func (s *ResultActionService) OpenEntry(_ context.Context, entry *domain.ResultEntry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}

	target := s.ResolveLink(entry)
	if target == "" {
		return fmt.Errorf("entry has no link")
	}

	return openURL(target)
}

// CopyLink copies the result's resolved link to the system clipboard.
func (s *ResultActionService) CopyLink(_ context.Context, entry *domain.ResultEntry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}

	target := s.ResolveLink(entry)
	if target == "" {
		return fmt.Errorf("entry has no link")
	}

	return copyToClipboard(target)
}

// ResolveLink converts an entry's site-relative link into an absolute
// URL or filesystem path, depending on how the site is configured.
// Links that are already absolute, and links of an unconfigured site,
// are returned unchanged.
func (s *ResultActionService) ResolveLink(entry *domain.ResultEntry) string {
	if entry == nil {
		return ""
	}
	link := entry.Link
	if link == "" || strings.Contains(link, "://") {
		return link
	}

	settings, err := s.settings.Get()
	if err != nil || !settings.Site.IsConfigured() {
		return link
	}

	if settings.Site.BaseURL != "" {
		path := strings.TrimPrefix(link, ".")
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return strings.TrimSuffix(settings.Site.BaseURL, "/") + path
	}

	return filepath.Join(settings.Site.Dir, strings.TrimPrefix(link, "./"))
}

// openURL opens a URL in the platform's default handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
