// Package domain defines the core business entities for Docsift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One indexable page of the documentation site
//   - ResultEntry: A display-ready search hit
//   - LoadReport: The outcome of one bulk index load
//   - SessionState: Lifecycle states of a search session
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
