package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meridian-labs/docsift-cli/internal/core/domain"
	"github.com/meridian-labs/docsift-cli/internal/core/ports/driven"
)

// Ensure HTTPFetcher implements the interface.
var _ driven.IndexFetcher = (*HTTPFetcher)(nil)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// HTTPConfig holds configuration for the HTTP index fetcher.
type HTTPConfig struct {
	// BaseURL is the root of the documentation site
	// (e.g. https://docs.example.com).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// Client overrides the HTTP client (used in tests).
	Client *http.Client
}

// HTTPFetcher retrieves the search index from a documentation site
// over HTTP(S).
type HTTPFetcher struct {
	client   *http.Client
	indexURL string
}

// NewHTTPFetcher creates an HTTP index fetcher for the given site root.
func NewHTTPFetcher(cfg HTTPConfig) *HTTPFetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &HTTPFetcher{
		client:   client,
		indexURL: strings.TrimSuffix(cfg.BaseURL, "/") + "/" + IndexFileName,
	}
}

// Fetch retrieves and decodes the index document from the site root.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.indexURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating index request for %s: %v: %w", f.indexURL, err, domain.ErrFetchFailed)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting index from %s: %v: %w", f.indexURL, err, domain.ErrFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requesting index from %s: status %d: %w", f.indexURL, resp.StatusCode, domain.ErrFetchFailed)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading index body from %s: %v: %w", f.indexURL, err, domain.ErrFetchFailed)
	}

	return decodeIndex(body)
}

// Source describes the fetch location for logs.
func (f *HTTPFetcher) Source() string {
	return f.indexURL
}
