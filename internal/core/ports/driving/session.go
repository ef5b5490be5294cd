package driving

import (
	"context"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// SessionService manages the search session lifecycle and answers
// queries once the session is ready. One session owns one store
// handle; it is constructed at startup and closed on shutdown.
type SessionService interface {
	SearchService

	// Open prepares the store and, when the store reports fresh
	// creation, loads the index before the session becomes ready.
	// Idempotent once ready. Fetch and parse failures leave the store
	// empty but the session still becomes ready; only a storage
	// failure is fatal.
	Open(ctx context.Context) error

	// State reports the current lifecycle state.
	State() domain.SessionState

	// Ready reports whether queries are accepted.
	Ready() bool

	// DocumentCount reports the number of stored documents.
	DocumentCount(ctx context.Context) (int, error)

	// Rebuild drops the store schema and reloads the index from the
	// configured site. The only sanctioned way to refresh content.
	// The report describes the reload outcome; fetch and parse failures
	// are returned as errors but leave the session ready over an empty
	// store.
	Rebuild(ctx context.Context) (*domain.LoadReport, error)

	// ID returns the session identifier used in logs and diagnostics.
	ID() string

	// StorePath returns the backing store location for diagnostics.
	StorePath() string

	// Close releases the store handle. The session is unusable after.
	Close() error
}
