package driving

import (
	"context"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// Activating a result navigates to the underlying document, the way a
// rendered link would in a browser. This is used by TUI and CLI adapters.
type ResultActionService interface {
	// OpenEntry opens the entry's document in the default browser or
	// application.
	OpenEntry(ctx context.Context, entry *domain.ResultEntry) error

	// CopyLink copies the entry's resolved link to the system clipboard.
	CopyLink(ctx context.Context, entry *domain.ResultEntry) error

	// ResolveLink returns the absolute URL or path the entry points at,
	// resolved against the configured site root.
	ResolveLink(entry *domain.ResultEntry) string
}
