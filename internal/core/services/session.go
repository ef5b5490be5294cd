package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driving"
	"github.com/meridian-labs/docsift-cli/internal/logger"
)

// Ensure SearchSession implements the interfaces.
var _ driving.SessionService = (*SearchSession)(nil)
var _ driving.SearchService = (*SearchSession)(nil)

// SearchSession owns the store handle and the open -> (conditionally)
// load -> ready lifecycle. It is constructed once at startup and
// passed by reference to the driving adapters; nothing else touches
// the store handle.
//
// The loader runs only when the store reports fresh creation, so an
// existing index is never fetched or inserted twice. Fetch and parse
// failures leave the store empty but the session still becomes ready;
// only a storage failure is fatal to the session.
type SearchSession struct {
	store   driven.DocumentStore
	fetcher driven.IndexFetcher
	engine  *QueryEngine
	builder *EntryBuilder

	mu    sync.Mutex
	state domain.SessionState
	id    string
}

// NewSearchSession creates a session over the given store.
// The fetcher is optional: without one, a freshly created store simply
// stays empty. The builder is optional; nil selects unhighlighted
// entries.
func NewSearchSession(
	store driven.DocumentStore,
	fetcher driven.IndexFetcher,
	builder *EntryBuilder,
) *SearchSession {
	if builder == nil {
		builder = NewEntryBuilder(nil)
	}
	return &SearchSession{
		store:   store,
		fetcher: fetcher,
		engine:  NewQueryEngine(store),
		builder: builder,
		state:   domain.SessionIdle,
		id:      uuid.NewString(),
	}
}

// ID returns the session identifier used in logs and diagnostics.
func (s *SearchSession) ID() string {
	return s.id
}

// State reports the current lifecycle state.
func (s *SearchSession) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ready reports whether queries are accepted.
func (s *SearchSession) Ready() bool {
	return s.State() == domain.SessionReady
}

// StorePath returns the backing store location for diagnostics.
func (s *SearchSession) StorePath() string {
	return s.store.Path()
}

// Open prepares the store and, when the store reports fresh creation,
// loads the index. Idempotent once ready.
func (s *SearchSession) Open(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case domain.SessionReady:
		s.mu.Unlock()
		return nil
	case domain.SessionClosed:
		s.mu.Unlock()
		return domain.ErrSessionClosed
	case domain.SessionFailed:
		s.mu.Unlock()
		return fmt.Errorf("open previously failed: %w", domain.ErrStorageUnavailable)
	case domain.SessionOpening, domain.SessionLoading:
		s.mu.Unlock()
		return fmt.Errorf("open already in flight: %w", domain.ErrSessionNotReady)
	}
	s.state = domain.SessionOpening
	s.mu.Unlock()

	logger.Section("Session Open")
	logger.Debug("Session %s opening store at %q", s.id, s.store.Path())

	created, err := s.store.Open(ctx)
	if err != nil {
		s.setState(domain.SessionFailed)
		logger.Error("Store open failed, search disabled: %v", err)
		return fmt.Errorf("open store: %w", err)
	}

	if created {
		s.setState(domain.SessionLoading)
		logger.Info("Store freshly created, loading index")
		if _, err := s.load(ctx); err != nil {
			logger.Warn("Index load skipped: %v", err)
		}
	} else {
		logger.Debug("Store already populated, loader skipped")
	}

	s.setState(domain.SessionReady)
	logger.Info("Session %s ready", s.id)
	return nil
}

// Search runs a substring query and returns display-ready entries in
// index order. Input at or below the minimum length returns no
// entries without touching the index.
func (s *SearchSession) Search(ctx context.Context, query string) ([]domain.ResultEntry, error) {
	switch s.State() {
	case domain.SessionReady:
	case domain.SessionClosed:
		return nil, domain.ErrSessionClosed
	default:
		return nil, domain.ErrSessionNotReady
	}

	q := domain.NormalizeQuery(query)
	if !domain.Dispatchable(q) {
		logger.Debug("Query %q below minimum length, not dispatched", q)
		return []domain.ResultEntry{}, nil
	}

	docs, err := s.engine.Matches(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}

	return s.builder.BuildEntries(docs, q), nil
}

// DocumentCount reports the number of stored documents.
func (s *SearchSession) DocumentCount(ctx context.Context) (int, error) {
	if s.State() == domain.SessionClosed {
		return 0, domain.ErrSessionClosed
	}
	return s.store.Count(ctx)
}

// Rebuild drops the store schema and reloads the index from the
// configured site. Only valid once the session is ready. Fetch and
// parse failures are returned but leave the session ready over an
// empty store.
func (s *SearchSession) Rebuild(ctx context.Context) (*domain.LoadReport, error) {
	switch s.State() {
	case domain.SessionReady:
	case domain.SessionClosed:
		return nil, domain.ErrSessionClosed
	default:
		return nil, domain.ErrSessionNotReady
	}

	logger.Section("Index Rebuild")
	if err := s.store.Recreate(ctx); err != nil {
		return nil, fmt.Errorf("recreate store: %w", err)
	}

	s.setState(domain.SessionLoading)
	report, err := s.load(ctx)
	s.setState(domain.SessionReady)
	return report, err
}

// Close releases the store handle. The session is unusable after.
func (s *SearchSession) Close() error {
	s.mu.Lock()
	if s.state == domain.SessionClosed {
		s.mu.Unlock()
		return nil
	}
	s.state = domain.SessionClosed
	s.mu.Unlock()

	logger.Debug("Session %s closed", s.id)
	return s.store.Close()
}

// load fetches the index document and bulk-inserts it. Failures here
// never affect session readiness: the store simply stays empty (or
// partially filled), so later queries return no results for the
// missing records.
func (s *SearchSession) load(ctx context.Context) (*domain.LoadReport, error) {
	if s.fetcher == nil {
		logger.Debug("No index fetcher configured, store stays empty")
		return nil, nil
	}

	logger.Debug("Fetching index from %s", s.fetcher.Source())
	docs, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Fetched %d records", len(docs))

	report, err := s.store.InsertBatch(ctx, docs)
	if err != nil {
		return nil, err
	}

	logger.Info("Index loaded: %d inserted, %d failed", report.Inserted, report.Failed)
	for _, f := range report.Failures {
		logger.Debug("Insert failed for %q: %v", f.URL, f.Err)
	}
	return &report, nil
}

// setState transitions the lifecycle state under the lock.
func (s *SearchSession) setState(next domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next
}
