// Package sqlite provides the SQLite-backed implementation of the
// document store port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// One documents table keyed by url with a non-unique index on content.
// The schema version lives in PRAGMA user_version: opening a database
// created at a different version drops and recreates the table rather
// than migrating it, and reports the store as freshly created so the
// index loader repopulates it.
//
// # Data Location
//
// By default, the database is stored at ~/.docsift/data/index.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
