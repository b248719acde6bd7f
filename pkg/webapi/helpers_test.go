package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

// fakeCache is an in-memory CacheStore that records its traffic.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]CacheEntry
	gets    int
	sets    int
	failSet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]CacheEntry)}
}

func (f *fakeCache) Get(ctx context.Context, bucket, key string) (CacheEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	e, ok := f.entries[bucket+"/"+key]
	return e, ok
}

func (f *fakeCache) Set(ctx context.Context, bucket, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.failSet {
		return errors.New("disk full")
	}
	f.entries[bucket+"/"+key] = CacheEntry{
		Data:     append([]byte(nil), data...),
		Modified: time.Now(),
	}
	return nil
}

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("session expired")
}

// testLogger collects debug output.
type testLogger struct {
	t *testing.T
}

func (l testLogger) Debugf(format string, args ...interface{}) {
	l.t.Logf(format, args...)
}

// newTestClient starts a server with handler and returns a client pointed
// at it. Rate limit waits are recorded instead of slept.
func newTestClient(t *testing.T, handler http.Handler, cache CacheStore) (*Client, *[]time.Duration) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := Config{
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}),
		BaseURL:     server.URL,
		Logger:      testLogger{t: t},
	}
	if cache != nil {
		cfg.Cache = cache
	}

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	var sleeps []time.Duration
	var mu sync.Mutex
	client.sleep = func(ctx context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		sleeps = append(sleeps, d)
		return nil
	}
	return client, &sleeps
}

// writeJSON encodes v as the response body.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to write response body: %v", err)
	}
}

// pagedHandler serves total items built by item, honoring the limit and
// offset query parameters.
func pagedHandler(t *testing.T, total int, item func(i int) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil {
			t.Errorf("missing limit parameter: %q", q.Get("limit"))
		}
		offset, err := strconv.Atoi(q.Get("offset"))
		if err != nil {
			t.Errorf("missing offset parameter: %q", q.Get("offset"))
		}

		items := []any{}
		for i := offset; i < offset+limit && i < total; i++ {
			items = append(items, item(i))
		}
		writeJSON(t, w, map[string]any{
			"items":  items,
			"limit":  limit,
			"offset": offset,
			"total":  total,
		})
	}
}
