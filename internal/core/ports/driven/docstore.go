package driven

import (
	"context"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
)

// DocumentStore persists the search index.
// Backed by SQLite for on-disk storage; a memory twin serves tests.
type DocumentStore interface {
	// Open prepares the store, creating the schema on first use or on
	// a schema version change. The created result reports whether a
	// fresh schema was created; the index loader runs only then.
	// A store that cannot be opened or prepared reports an error
	// matching domain.ErrStorageUnavailable.
	Open(ctx context.Context) (created bool, err error)

	// InsertBatch stores documents in a single write transaction.
	// Per-record failures (duplicate URL, missing fields) are recorded
	// in the report and do not abort the batch.
	InsertBatch(ctx context.Context, docs []domain.Document) (domain.LoadReport, error)

	// ScanContent returns a cursor over all documents in the content
	// index's natural iteration order.
	ScanContent(ctx context.Context) (DocumentCursor, error)

	// Count reports the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Recreate drops and rebuilds the schema, leaving the store empty
	// as if freshly created.
	Recreate(ctx context.Context) error

	// Path returns the backing location for diagnostics.
	// Empty for in-memory implementations.
	Path() string

	// Close releases the store handle.
	Close() error
}

// DocumentCursor iterates a content-ordered scan one document at a
// time, in the database/sql rows idiom.
type DocumentCursor interface {
	// Next advances the cursor and reports whether a document is
	// available.
	Next() bool

	// Document returns the current document.
	// Valid only after Next has returned true.
	Document() domain.Document

	// Err returns the error that terminated iteration, if any.
	Err() error

	// Close releases the cursor.
	Close() error
}
