package domain

import "errors"

// Domain errors represent search subsystem failures.
// These are distinct from infrastructure errors.
var (
	// ErrStorageUnavailable indicates the persistent store could not be
	// opened or prepared. Fatal to the search subsystem only: search is
	// disabled and the rest of the application keeps running.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrFetchFailed indicates the index document could not be
	// retrieved. Non-fatal: the store stays empty and queries return
	// no results.
	ErrFetchFailed = errors.New("index fetch failed")

	// ErrParseFailed indicates the index document body was not a valid
	// document collection. Non-fatal, same degradation as ErrFetchFailed.
	ErrParseFailed = errors.New("index parse failed")

	// ErrInsertFailed indicates a single record could not be stored.
	// Tolerated per record; the surrounding batch continues.
	ErrInsertFailed = errors.New("document insert failed")

	// ErrQueryFailed indicates an index scan broke mid-iteration.
	// Non-fatal: reported as zero results, never a crash.
	ErrQueryFailed = errors.New("query failed")

	// Session lifecycle errors.

	// ErrSessionNotReady indicates a query arrived before the session
	// finished opening and loading. Callers retry on their next input
	// event; queries are never queued behind the open.
	ErrSessionNotReady = errors.New("search session not ready")

	// ErrSessionClosed indicates an operation on a closed session.
	ErrSessionClosed = errors.New("search session closed")
)
