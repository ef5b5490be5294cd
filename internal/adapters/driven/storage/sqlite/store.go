package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
	"github.com/meridian-labs/docsift-cli/internal/logger"
)

// schemaVersion stamps databases with the domain's index layout.
// A bump here drops and recreates existing databases on open, and the
// loader repopulates them.
const schemaVersion = domain.IndexSchemaVersion

// schemaSQL creates the index schema. The title column is nullable:
// the index document's title field is optional.
const schemaSQL = `
CREATE TABLE documents (
	url     TEXT PRIMARY KEY,
	title   TEXT,
	content TEXT NOT NULL
);
CREATE INDEX idx_documents_content ON documents(content);
`

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Store is the SQLite-backed document store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a store backed by a database file in dataDir.
// If dataDir is empty, defaults to ~/.docsift/data/index.db. The
// schema is not touched until Open runs.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %v: %w", err, domain.ErrStorageUnavailable)
		}
		dataDir = filepath.Join(home, ".docsift", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %v: %w", err, domain.ErrStorageUnavailable)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %v: %w", err, domain.ErrStorageUnavailable)
	}

	return &Store{
		db:   db,
		path: dbPath,
	}, nil
}

// Open prepares the schema. A database at the current schema version
// is reused untouched; a fresh file or one carrying a different
// version gets a new empty schema and reports created so the loader
// runs.
func (s *Store) Open(ctx context.Context) (bool, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return false, fmt.Errorf("reading schema version: %v: %w", err, domain.ErrStorageUnavailable)
	}

	if version == schemaVersion {
		logger.Debug("Index schema at version %d, reusing", version)
		return false, nil
	}
	if version != 0 {
		logger.Info("Index schema version changed (%d -> %d), recreating", version, schemaVersion)
	}

	if err := s.createSchema(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Recreate drops and rebuilds the schema at the current version,
// leaving the store empty as if freshly created.
func (s *Store) Recreate(ctx context.Context) error {
	return s.createSchema(ctx)
}

// createSchema replaces any existing documents table in a single
// transaction and stamps the schema version.
func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning schema transaction: %v: %w", err, domain.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS documents"); err != nil {
		return fmt.Errorf("dropping old schema: %v: %w", err, domain.ErrStorageUnavailable)
	}
	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("creating schema: %v: %w", err, domain.ErrStorageUnavailable)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("stamping schema version: %v: %w", err, domain.ErrStorageUnavailable)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema: %v: %w", err, domain.ErrStorageUnavailable)
	}
	committed = true
	return nil
}

// InsertBatch stores documents in a single write transaction.
// A record that fails its insert (duplicate url, missing fields) is
// recorded in the report and skipped; SQLite rolls back only the
// failed statement, so the batch continues.
func (s *Store) InsertBatch(ctx context.Context, docs []domain.Document) (domain.LoadReport, error) {
	var report domain.LoadReport

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return report, fmt.Errorf("beginning insert transaction: %v: %w", err, domain.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (url, title, content)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return report, fmt.Errorf("preparing insert: %v: %w", err, domain.ErrStorageUnavailable)
	}
	defer stmt.Close()

	for _, doc := range docs {
		if !doc.Indexable() {
			report.Failed++
			report.Failures = append(report.Failures, domain.InsertFailure{
				URL: doc.URL,
				Err: fmt.Errorf("missing url or content: %w", domain.ErrInsertFailed),
			})
			continue
		}
		if _, err := stmt.ExecContext(ctx, doc.URL, nullString(doc.Title), doc.Content); err != nil {
			report.Failed++
			report.Failures = append(report.Failures, domain.InsertFailure{
				URL: doc.URL,
				Err: fmt.Errorf("%v: %w", err, domain.ErrInsertFailed),
			})
			continue
		}
		report.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return domain.LoadReport{}, fmt.Errorf("committing insert transaction: %v: %w", err, domain.ErrStorageUnavailable)
	}
	committed = true
	return report, nil
}

// ScanContent returns a cursor over the documents table in content
// index order: ascending content, then url for identical content.
// This mirrors walking the index itself and keeps result order stable.
func (s *Store) ScanContent(ctx context.Context) (driven.DocumentCursor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, content
		FROM documents
		ORDER BY content, url
	`)
	if err != nil {
		logger.Warn("Content scan query failed: %v", err)
		return nil, fmt.Errorf("querying content index: %w", domain.ErrQueryFailed)
	}
	return &rowsCursor{rows: rows}, nil
}

// Count reports the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %v: %w", err, domain.ErrQueryFailed)
	}
	return count, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// rowsCursor adapts sql.Rows to the document cursor port.
type rowsCursor struct {
	rows    *sql.Rows
	current domain.Document
	err     error
}

var _ driven.DocumentCursor = (*rowsCursor)(nil)

// Next advances to the next document row.
func (c *rowsCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.rows.Next() {
		return false
	}

	var title sql.NullString
	if err := c.rows.Scan(&c.current.URL, &title, &c.current.Content); err != nil {
		logger.Warn("Document row scan failed: %v", err)
		c.err = fmt.Errorf("scanning document row: %w", domain.ErrQueryFailed)
		return false
	}
	c.current.Title = stringValue(title)
	return true
}

// Document returns the current document.
func (c *rowsCursor) Document() domain.Document {
	return c.current
}

// Err returns the error that terminated iteration, if any.
func (c *rowsCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	if err := c.rows.Err(); err != nil {
		logger.Warn("Content scan broke: %v", err)
		return fmt.Errorf("iterating content index: %w", domain.ErrQueryFailed)
	}
	return nil
}

// Close releases the cursor.
func (c *rowsCursor) Close() error {
	return c.rows.Close()
}

// nullString converts an optional string to its nullable column value.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// stringValue converts a nullable column value back to a string.
func stringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
