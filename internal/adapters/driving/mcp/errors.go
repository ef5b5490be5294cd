// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Docsift. It lets AI assistants query the documentation index and
// inspect its status over stdio or HTTP.
package mcp

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("mcp: session service is required")
