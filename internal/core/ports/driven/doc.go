// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Persistent search index (SQLite, or memory in tests)
//   - DocumentCursor: Content-ordered iteration over the index
//   - IndexFetcher: Retrieves the serialized document collection
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These have no-op defaults - rendering logic works without a real
// display surface:
//
//   - HighlightRenderer: Wraps matched query text in highlight markup
//   - ResultsSink: Receives display-ready result entries
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
