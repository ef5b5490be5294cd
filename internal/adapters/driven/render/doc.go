// Package render provides HighlightRenderer implementations for
// marking up matched query text in result snippets.
//
// HTMLHighlighter emits <mark> elements for surfaces that render
// HTML (the MCP tool output and JSON result dumps). NullHighlighter
// passes matches through untouched for plain-text surfaces. The TUI
// applies its own lipgloss styles and does not use this package.
package render
