package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// It mirrors the SQLite store's contract, including the freshly-created
// signal and the content-ordered scan, and backs tests and the
// persistence-unavailable fallback path.
type DocumentStore struct {
	mu      sync.RWMutex
	docs    map[string]domain.Document
	created bool
	closed  bool
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		docs: make(map[string]domain.Document),
	}
}

// Open prepares the store. The first open reports a freshly created
// schema; later opens on the same instance report reuse.
func (s *DocumentStore) Open(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = false
	if !s.created {
		s.created = true
		return true, nil
	}
	return false, nil
}

// InsertBatch stores documents in one pass. A record with missing
// fields or a duplicate URL is recorded as a failure and skipped; the
// first record for a URL wins, matching primary-key semantics.
func (s *DocumentStore) InsertBatch(_ context.Context, docs []domain.Document) (domain.LoadReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.usable(); err != nil {
		return domain.LoadReport{}, err
	}

	var report domain.LoadReport
	for _, doc := range docs {
		if !doc.Indexable() {
			report.Failed++
			report.Failures = append(report.Failures, domain.InsertFailure{
				URL: doc.URL,
				Err: fmt.Errorf("missing url or content: %w", domain.ErrInsertFailed),
			})
			continue
		}
		if _, exists := s.docs[doc.URL]; exists {
			report.Failed++
			report.Failures = append(report.Failures, domain.InsertFailure{
				URL: doc.URL,
				Err: fmt.Errorf("duplicate url: %w", domain.ErrInsertFailed),
			})
			continue
		}
		s.docs[doc.URL] = doc
		report.Inserted++
	}

	return report, nil
}

// ScanContent returns a cursor over a snapshot of the store in content
// index order: ascending content, then URL for identical content.
func (s *DocumentStore) ScanContent(_ context.Context) (driven.DocumentCursor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.usable(); err != nil {
		return nil, err
	}

	snapshot := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		snapshot = append(snapshot, doc)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].Content != snapshot[j].Content {
			return snapshot[i].Content < snapshot[j].Content
		}
		return snapshot[i].URL < snapshot[j].URL
	})

	return &cursor{docs: snapshot}, nil
}

// Count reports the number of stored documents.
func (s *DocumentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.usable(); err != nil {
		return 0, err
	}
	return len(s.docs), nil
}

// Recreate empties the store, leaving the schema in place.
func (s *DocumentStore) Recreate(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.usable(); err != nil {
		return err
	}
	s.docs = make(map[string]domain.Document)
	return nil
}

// Path returns the backing location. Always empty for memory.
func (s *DocumentStore) Path() string {
	return ""
}

// Close releases the store. Contents survive until the instance is
// garbage collected, mirroring a closed-but-present database file.
func (s *DocumentStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// usable reports why the store cannot serve requests, if it cannot.
// Callers must hold the lock.
func (s *DocumentStore) usable() error {
	if s.closed {
		return fmt.Errorf("store closed: %w", domain.ErrStorageUnavailable)
	}
	if !s.created {
		return fmt.Errorf("store not open: %w", domain.ErrStorageUnavailable)
	}
	return nil
}

// cursor iterates a content-ordered snapshot.
type cursor struct {
	docs []domain.Document
	pos  int
}

// Next advances the cursor and reports whether a document is available.
func (c *cursor) Next() bool {
	if c.pos >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

// Document returns the current document.
func (c *cursor) Document() domain.Document {
	return c.docs[c.pos-1]
}

// Err reports the error that terminated iteration. Snapshot iteration
// cannot fail.
func (c *cursor) Err() error {
	return nil
}

// Close releases the cursor.
func (c *cursor) Close() error {
	return nil
}
