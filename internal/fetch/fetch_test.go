package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}
		fmt.Fprint(w, "<html>prices</html>")
	}))
	defer srv.Close()

	source := NewHTTPSource(zerolog.Nop())
	body, err := source.Fetch(context.Background(), "neste", srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(body) != "<html>prices</html>" {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestHTTPSourceFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	source := NewHTTPSource(zerolog.Nop())
	if _, err := source.Fetch(context.Background(), "neste", srv.URL); err == nil {
		t.Fatal("expected an error for a 503 response")
	}
}

// recordingSource counts delegated fetches.
type recordingSource struct {
	calls int
	body  []byte
	err   error
}

func (s *recordingSource) Fetch(ctx context.Context, name, url string) ([]byte, error) {
	s.calls++
	return s.body, s.err
}

func TestFileCacheSourceMissThenHit(t *testing.T) {
	dir := t.TempDir()
	next := &recordingSource{body: []byte("<html>cached</html>")}
	source := NewFileCacheSource(next, dir, zerolog.Nop())

	// Miss: delegates and writes the cache file.
	body, err := source.Fetch(context.Background(), "viada", "http://example.invalid")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(body) != "<html>cached</html>" {
		t.Errorf("unexpected body: %q", body)
	}
	if next.calls != 1 {
		t.Fatalf("expected 1 delegated fetch, got %d", next.calls)
	}

	cached, err := os.ReadFile(filepath.Join(dir, "viada.html"))
	if err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	if string(cached) != "<html>cached</html>" {
		t.Errorf("unexpected cache file contents: %q", cached)
	}

	// Hit: served from disk, no further delegation.
	body, err = source.Fetch(context.Background(), "viada", "http://example.invalid")
	if err != nil {
		t.Fatalf("Fetch failed on cache hit: %v", err)
	}
	if string(body) != "<html>cached</html>" {
		t.Errorf("unexpected body on cache hit: %q", body)
	}
	if next.calls != 1 {
		t.Errorf("expected no delegated fetch on cache hit, got %d", next.calls)
	}
}

func TestFileCacheSourcePropagatesFetchError(t *testing.T) {
	dir := t.TempDir()
	next := &recordingSource{err: fmt.Errorf("connection refused")}
	source := NewFileCacheSource(next, dir, zerolog.Nop())

	if _, err := source.Fetch(context.Background(), "virsi", "http://example.invalid"); err == nil {
		t.Fatal("expected delegated error to propagate")
	}
	if _, err := os.Stat(filepath.Join(dir, "virsi.html")); !os.IsNotExist(err) {
		t.Error("cache file should not exist after a failed fetch")
	}
}
