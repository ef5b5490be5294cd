package driven

import (
	"context"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// IndexFetcher retrieves the serialized document collection for a
// documentation site. The index lives at a fixed relative path under
// the site root; implementations differ only in how the root is
// reached (HTTP or local filesystem).
type IndexFetcher interface {
	// Fetch retrieves and decodes the index document.
	// A transport failure matches domain.ErrFetchFailed; a body that
	// is not a valid document collection matches domain.ErrParseFailed.
	Fetch(ctx context.Context) ([]domain.Document, error)

	// Source describes the fetch location for logs.
	Source() string
}
