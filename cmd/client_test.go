package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jfmyers9/spindle/internal/auth"
	"github.com/jfmyers9/spindle/internal/cache"
	"github.com/jfmyers9/spindle/internal/config"
	"github.com/rs/zerolog"
)

func TestOpenCache(t *testing.T) {
	t.Cleanup(closeCache)

	tests := []struct {
		mode    string
		wantNil bool
		wantErr bool
	}{
		{mode: config.CacheOff, wantNil: true},
		{mode: config.CacheMemory},
		{mode: config.CacheSQLite},
		{mode: "redis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			c := &config.Config{
				CacheMode: tt.mode,
				CacheDB:   filepath.Join(t.TempDir(), "sub", "cache.db"),
			}

			store, err := openCache(c, zerolog.Nop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("openCache() error = %v", err)
			}
			if (store == nil) != tt.wantNil {
				t.Errorf("openCache() store = %v, wantNil %v", store, tt.wantNil)
			}
			closeCache()
		})
	}
}

func TestOpenCacheTypes(t *testing.T) {
	t.Cleanup(closeCache)

	store, err := openCache(&config.Config{CacheMode: config.CacheMemory}, zerolog.Nop())
	if err != nil {
		t.Fatalf("openCache() error = %v", err)
	}
	if _, ok := store.(*cache.MemoryStore); !ok {
		t.Errorf("memory mode returned %T", store)
	}

	store, err = openCache(&config.Config{
		CacheMode: config.CacheSQLite,
		CacheDB:   filepath.Join(t.TempDir(), "cache.db"),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("openCache() error = %v", err)
	}
	if _, ok := store.(*cache.SQLiteStore); !ok {
		t.Errorf("sqlite mode returned %T", store)
	}
	if cacheCloser == nil {
		t.Error("sqlite store was not registered for closing")
	}
}

func TestNewHTTPClient(t *testing.T) {
	c, err := newHTTPClient(&config.Config{Timeout: 5 * time.Second, ProxyURL: "http://proxy.local:3128"})
	if err != nil {
		t.Fatalf("newHTTPClient() error = %v", err)
	}
	if c.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", c.Timeout)
	}

	transport, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport = %T", c.Transport)
	}
	req, _ := http.NewRequest(http.MethodGet, "https://api.spotify.com/v1/me", nil)
	proxy, err := transport.Proxy(req)
	if err != nil {
		t.Fatalf("Proxy() error = %v", err)
	}
	if proxy == nil || proxy.Host != "proxy.local:3128" {
		t.Errorf("Proxy() = %v, want proxy.local:3128", proxy)
	}

	if _, err := newHTTPClient(&config.Config{ProxyURL: "://bad"}); err == nil {
		t.Error("expected an error for an invalid proxy URL")
	}
}

func TestNewClient(t *testing.T) {
	t.Cleanup(closeCache)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer static-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"u1","display_name":"Test User"}`)
	}))
	defer server.Close()

	c := &config.Config{
		AccessToken: "static-token",
		CacheMode:   config.CacheOff,
		BaseURL:     server.URL,
		Timeout:     time.Second,
	}

	client, err := newClient(context.Background(), c, zerolog.Nop())
	if err != nil {
		t.Fatalf("newClient() error = %v", err)
	}

	profile, err := client.GetUserProfile(context.Background())
	if err != nil {
		t.Fatalf("GetUserProfile() error = %v", err)
	}
	if profile.DisplayName != "Test User" {
		t.Errorf("DisplayName = %q", profile.DisplayName)
	}
}

func TestNewClientWithoutCredentials(t *testing.T) {
	_, err := newClient(context.Background(), &config.Config{CacheMode: config.CacheOff}, zerolog.Nop())
	if !errors.Is(err, auth.ErrNoCredentials) {
		t.Errorf("newClient() error = %v, want ErrNoCredentials", err)
	}
}
