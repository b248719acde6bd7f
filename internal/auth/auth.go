// Package auth provides the token sources spindle uses to authenticate
// against the Web API.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNoCredentials is returned when no access token, token file, or client
// credentials are configured.
var ErrNoCredentials = errors.New("no credentials configured: set access_token, token_file, or client_id and client_secret")

// Options selects and configures a token source.
type Options struct {
	AccessToken  string
	TokenFile    string
	ClientID     string
	ClientSecret string

	// TokenURL overrides the accounts service token endpoint.
	TokenURL string
}

func (o Options) tokenURL() string {
	if o.TokenURL != "" {
		return o.TokenURL
	}
	return spotifyauth.TokenURL
}

// NewTokenSource picks a token source from opts. A static access token wins,
// then a saved token file (if it exists), then client credentials.
func NewTokenSource(ctx context.Context, opts Options) (oauth2.TokenSource, error) {
	if opts.AccessToken != "" {
		return Static(opts.AccessToken), nil
	}

	if opts.TokenFile != "" {
		if _, err := os.Stat(opts.TokenFile); err == nil {
			return FileTokenSource(ctx, opts)
		}
	}

	if opts.ClientID != "" && opts.ClientSecret != "" {
		return ClientCredentials(ctx, opts), nil
	}

	return nil, ErrNoCredentials
}

// Static returns a source that always yields accessToken.
func Static(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
}

// ClientCredentials returns an app-only token source using the client
// credentials grant. Tokens are cached and renewed on expiry.
func ClientCredentials(ctx context.Context, opts Options) oauth2.TokenSource {
	cfg := &clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     opts.tokenURL(),
	}
	return cfg.TokenSource(ctx)
}

// FileTokenSource loads a previously saved token from opts.TokenFile and
// refreshes it through the accounts service when it expires. Refreshed
// tokens are written back to the file.
func FileTokenSource(ctx context.Context, opts Options) (oauth2.TokenSource, error) {
	tok, err := LoadToken(opts.TokenFile)
	if err != nil {
		return nil, err
	}

	cfg := &oauth2.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyauth.AuthURL,
			TokenURL: opts.tokenURL(),
		},
	}

	src := &persistingSource{
		base: cfg.TokenSource(ctx, tok),
		path: opts.TokenFile,
		last: tok.AccessToken,
	}
	return oauth2.ReuseTokenSource(tok, src), nil
}

// persistingSource saves every new token it sees to path.
type persistingSource struct {
	base oauth2.TokenSource
	path string

	mu   sync.Mutex
	last string
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		if err := SaveToken(s.path, tok); err != nil {
			return nil, err
		}
		s.last = tok.AccessToken
	}
	return tok, nil
}

// LoadToken reads a JSON-encoded token from path.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("token file %s contains no token", path)
	}
	return &tok, nil
}

// SaveToken writes tok to path as JSON, readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	if tok == nil {
		return errors.New("cannot save a nil token")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
