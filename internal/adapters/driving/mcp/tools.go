package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the text to search the documentation for"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput represents a single search result. The snippet carries
// <mark> markup around every query occurrence inside the excerpt
// window.
type ResultOutput struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Link    string `json:"link"`
	Display string `json:"display"`
	Snippet string `json:"snippet,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the indexed documentation pages for a text fragment",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation. Queries at or below
// the minimum length come back with zero results, the same as in the
// interactive surfaces.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	entries, err := s.ports.Session.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]ResultOutput, len(entries)),
		Count:   len(entries),
	}

	for i := range entries {
		output.Results[i] = ResultOutput{
			URL:     entries[i].Document.URL,
			Title:   entries[i].Document.Title,
			Link:    entries[i].Link,
			Display: entries[i].Display,
			Snippet: entries[i].Snippet,
		}
	}

	return nil, output, nil
}
