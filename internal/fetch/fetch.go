// Package fetch provides content sources for retrieving provider pages.
//
// A Source abstracts where raw page content comes from: the live site
// over HTTP, or a local file-replay cache used during development to
// avoid hammering the provider sites.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/eeriks/FuelPriceScraper/internal/useragent"
)

// Source retrieves raw page content for a provider. The name is a
// stable provider identifier, used as the cache key by caching sources.
type Source interface {
	Fetch(ctx context.Context, name, url string) ([]byte, error)
}

// HTTPSource fetches page content from the live site.
type HTTPSource struct {
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPSource creates a Source backed by plain HTTP GET requests.
func NewHTTPSource(logger zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With().Str("component", "fetch").Logger(),
	}
}

// Fetch performs an HTTP GET against the provider URL and returns the
// response body. Non-200 responses are errors. There is no retry.
func (s *HTTPSource) Fetch(ctx context.Context, name, url string) ([]byte, error) {
	s.logger.Debug().
		Str("provider", name).
		Str("url", url).
		Msg("fetching page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", useragent.Random())
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return body, nil
}

// FileCacheSource wraps another Source with a local file-replay cache.
// If "<name>.html" exists in the cache directory its contents are
// returned without touching the wrapped source; otherwise the wrapped
// source is consulted and the body is written to that file. Delete the
// file to force a refetch.
type FileCacheSource struct {
	next   Source
	dir    string
	logger zerolog.Logger
}

// NewFileCacheSource creates a caching Source in front of next,
// storing page snapshots in dir.
func NewFileCacheSource(next Source, dir string, logger zerolog.Logger) *FileCacheSource {
	return &FileCacheSource{
		next:   next,
		dir:    dir,
		logger: logger.With().Str("component", "fetch-cache").Logger(),
	}
}

// Fetch returns cached content for the provider if present, otherwise
// delegates and caches the result.
func (s *FileCacheSource) Fetch(ctx context.Context, name, url string) ([]byte, error) {
	path := filepath.Join(s.dir, name+".html")

	body, err := os.ReadFile(path)
	if err == nil {
		s.logger.Debug().
			Str("provider", name).
			Str("file", path).
			Msg("serving page from cache")
		return body, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading cache file %s: %w", path, err)
	}

	body, err = s.next.Fetch(ctx, name, url)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, body, 0o644); err != nil {
		return nil, fmt.Errorf("writing cache file %s: %w", path, err)
	}

	s.logger.Debug().
		Str("provider", name).
		Str("file", path).
		Msg("cached page")

	return body, nil
}
