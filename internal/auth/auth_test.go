package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

// newTokenServer returns an accounts service stub that hands out numbered
// access tokens.
func newTokenServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var issued atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("token request method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse token request: %v", err)
		}
		n := issued.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"issued-%d","token_type":"Bearer","expires_in":3600,"grant":%q}`, n, r.PostForm.Get("grant_type"))
	}))
	t.Cleanup(server.Close)

	return server, &issued
}

func TestStatic(t *testing.T) {
	tok, err := Static("abc").Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "abc" {
		t.Errorf("AccessToken = %q, want %q", tok.AccessToken, "abc")
	}
}

func TestClientCredentials(t *testing.T) {
	server, issued := newTokenServer(t)

	src := ClientCredentials(context.Background(), Options{
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     server.URL,
	})

	for i := 0; i < 3; i++ {
		tok, err := src.Token()
		if err != nil {
			t.Fatalf("Token() error = %v", err)
		}
		if tok.AccessToken != "issued-1" {
			t.Errorf("AccessToken = %q, want issued-1", tok.AccessToken)
		}
	}

	// Valid tokens are reused
	if got := issued.Load(); got != 1 {
		t.Errorf("token endpoint called %d times, want 1", got)
	}
}

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")

	want := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := SaveToken(path, want); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}

	got, err := LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken() error = %v", err)
	}
	if got.AccessToken != want.AccessToken || got.RefreshToken != want.RefreshToken {
		t.Errorf("LoadToken() = %+v, want %+v", got, want)
	}
	if !got.Expiry.Equal(want.Expiry) {
		t.Errorf("Expiry = %v, want %v", got.Expiry, want.Expiry)
	}

	if err := SaveToken(path, nil); err == nil {
		t.Error("SaveToken(nil) should fail")
	}
}

func TestFileTokenSourceRefreshes(t *testing.T) {
	server, issued := newTokenServer(t)
	path := filepath.Join(t.TempDir(), "token.json")

	expired := &oauth2.Token{
		AccessToken:  "stale",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-time.Hour),
	}
	if err := SaveToken(path, expired); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}

	src, err := FileTokenSource(context.Background(), Options{
		TokenFile:    path,
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     server.URL,
	})
	if err != nil {
		t.Fatalf("FileTokenSource() error = %v", err)
	}

	tok, err := src.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "issued-1" {
		t.Errorf("AccessToken = %q, want issued-1", tok.AccessToken)
	}
	if issued.Load() != 1 {
		t.Errorf("token endpoint called %d times, want 1", issued.Load())
	}

	saved, err := LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken() error = %v", err)
	}
	if saved.AccessToken != "issued-1" {
		t.Errorf("saved AccessToken = %q, want issued-1", saved.AccessToken)
	}
}

func TestNewTokenSource(t *testing.T) {
	server, _ := newTokenServer(t)
	dir := t.TempDir()

	validFile := filepath.Join(dir, "valid.json")
	if err := SaveToken(validFile, &oauth2.Token{
		AccessToken: "from-file",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}

	tests := []struct {
		name      string
		opts      Options
		wantToken string
		wantErr   error
	}{
		{
			name:      "static token wins",
			opts:      Options{AccessToken: "static", TokenFile: validFile, ClientID: "id", ClientSecret: "s"},
			wantToken: "static",
		},
		{
			name:      "token file before client credentials",
			opts:      Options{TokenFile: validFile, ClientID: "id", ClientSecret: "s", TokenURL: server.URL},
			wantToken: "from-file",
		},
		{
			name:      "missing token file falls through",
			opts:      Options{TokenFile: filepath.Join(dir, "missing.json"), ClientID: "id", ClientSecret: "s", TokenURL: server.URL},
			wantToken: "issued-1",
		},
		{
			name:    "nothing configured",
			opts:    Options{},
			wantErr: ErrNoCredentials,
		},
		{
			name:    "client id without secret",
			opts:    Options{ClientID: "id"},
			wantErr: ErrNoCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewTokenSource(context.Background(), tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewTokenSource() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTokenSource() error = %v", err)
			}

			tok, err := src.Token()
			if err != nil {
				t.Fatalf("Token() error = %v", err)
			}
			if tok.AccessToken != tt.wantToken {
				t.Errorf("AccessToken = %q, want %q", tok.AccessToken, tt.wantToken)
			}
		})
	}
}
