package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
)

// Ensure FSFetcher implements the interface.
var _ driven.IndexFetcher = (*FSFetcher)(nil)

// FSFetcher retrieves the search index from a local site build
// directory. It serves the same role as HTTPFetcher for sites
// browsed straight off disk.
type FSFetcher struct {
	indexPath string
}

// NewFSFetcher creates a filesystem index fetcher for the given site
// directory.
func NewFSFetcher(dir string) *FSFetcher {
	return &FSFetcher{
		indexPath: filepath.Join(dir, IndexFileName),
	}
}

// Fetch reads and decodes the index document from the site directory.
func (f *FSFetcher) Fetch(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reading index from %s: %v: %w", f.indexPath, err, domain.ErrFetchFailed)
	}

	body, err := os.ReadFile(f.indexPath)
	if err != nil {
		return nil, fmt.Errorf("reading index from %s: %v: %w", f.indexPath, err, domain.ErrFetchFailed)
	}

	return decodeIndex(body)
}

// Source describes the fetch location for logs.
func (f *FSFetcher) Source() string {
	return f.indexPath
}
