package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jfmyers9/spindle/internal/auth"
	"github.com/jfmyers9/spindle/internal/cache"
	"github.com/jfmyers9/spindle/internal/config"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/rs/zerolog"
)

// cacheCloser is closed by Execute once the command finishes
var cacheCloser io.Closer

func closeCache() {
	if cacheCloser != nil {
		_ = cacheCloser.Close()
		cacheCloser = nil
	}
}

// apiClient returns the process-wide client, creating and installing it on
// first use
func apiClient(ctx context.Context) (*webapi.Client, error) {
	if c, err := webapi.Global(); err == nil {
		return c, nil
	}

	c, err := newClient(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := webapi.Install(c); err != nil && !errors.Is(err, webapi.ErrAlreadyInstalled) {
		return nil, err
	}
	return webapi.Global()
}

// newClient builds a client from configuration
func newClient(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*webapi.Client, error) {
	tokens, err := auth.NewTokenSource(ctx, auth.Options{
		AccessToken:  cfg.AccessToken,
		TokenFile:    cfg.TokenFile,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (run 'spindle auth' to configure)", err)
	}

	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	store, err := openCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("cache", cfg.CacheMode).
		Str("base_url", cfg.BaseURL).
		Msg("Creating API client")

	return webapi.NewClient(webapi.Config{
		TokenSource: tokens,
		Cache:       store,
		HTTPClient:  httpClient,
		BaseURL:     cfg.BaseURL,
		Logger:      apiLogger{logger: logger},
	})
}

// newHTTPClient applies the timeout and proxy settings
func newHTTPClient(cfg *config.Config) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy_url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}, nil
}

// openCache opens the configured cache store. A nil store disables caching.
func openCache(cfg *config.Config, logger zerolog.Logger) (webapi.CacheStore, error) {
	switch cfg.CacheMode {
	case config.CacheOff:
		return nil, nil
	case config.CacheMemory:
		return cache.NewMemoryStore(), nil
	case config.CacheSQLite, "":
		store, err := openSQLiteCache(cfg, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache mode %q (use sqlite, memory or off)", cfg.CacheMode)
	}
}

func openSQLiteCache(cfg *config.Config, logger zerolog.Logger) (*cache.SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.CacheDB), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	store, err := cache.NewSQLiteStore(cfg.CacheDB, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	cacheCloser = store
	return store, nil
}
