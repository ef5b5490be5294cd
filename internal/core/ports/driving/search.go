package driving

import (
	"context"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// SearchService answers substring queries against the loaded index.
type SearchService interface {
	// Search runs a case-insensitive substring query and returns
	// display-ready entries in the index's natural order. The query is
	// normalized first; input at or below the minimum length returns
	// no entries without touching the index. An unready session
	// reports domain.ErrSessionNotReady.
	Search(ctx context.Context, query string) ([]domain.ResultEntry, error)
}
