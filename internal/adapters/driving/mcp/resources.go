package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Docsift resources.
	uriScheme = "docsift://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the index status.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Search index status: session state, document count, store location",
		MIMEType:    "application/json",
	}, s.handleStatusResource)

	// Static resource for the site configuration.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "config",
		Name:        "config",
		Description: "Configured documentation site and display preferences",
		MIMEType:    "application/json",
	}, s.handleConfigResource)
}

// handleStatusResource reports the session's view of the index.
func (s *Server) handleStatusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type statusInfo struct {
		SessionID string `json:"session_id"`
		State     string `json:"state"`
		Ready     bool   `json:"ready"`
		Documents int    `json:"documents"`
		StorePath string `json:"store_path,omitempty"`
	}

	info := statusInfo{
		SessionID: s.ports.Session.ID(),
		State:     s.ports.Session.State().String(),
		Ready:     s.ports.Session.Ready(),
		StorePath: s.ports.Session.StorePath(),
	}

	// Count is best-effort: an unready session reports zero.
	if count, err := s.ports.Session.DocumentCount(ctx); err == nil {
		info.Documents = count
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleConfigResource reports the configured site. Without a settings
// port it reports the defaults.
func (s *Server) handleConfigResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type configInfo struct {
		SiteBaseURL string `json:"site_base_url,omitempty"`
		SiteDir     string `json:"site_dir,omitempty"`
		StorageDir  string `json:"storage_dir,omitempty"`
		Theme       string `json:"theme"`
		Configured  bool   `json:"configured"`
	}

	var info configInfo
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		info = configInfo{
			SiteBaseURL: settings.Site.BaseURL,
			SiteDir:     settings.Site.Dir,
			StorageDir:  settings.Storage.Dir,
			Theme:       settings.UI.Theme.String(),
			Configured:  settings.Site.IsConfigured(),
		}
	} else {
		info.Theme = domain.DefaultAppSettings().UI.Theme.String()
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
