package webapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Config holds client configuration.
type Config struct {
	TokenSource oauth2.TokenSource // Required: supplies bearer tokens
	Cache       CacheStore         // Optional: response cache (nil disables caching)
	HTTPClient  *http.Client       // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL     string             // Optional: Base URL for API (defaults to the Spotify Web API, used for testing)
	Logger      Logger             // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Web API operations.
//
// A Client is safe for concurrent use. It is normally constructed once and
// shared, see Install and Global.
type Client struct {
	tokens     oauth2.TokenSource
	cache      CacheStore
	httpClient *http.Client
	baseURL    string
	logger     Logger

	// sleep blocks for the rate-limit delay. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/"
)

// NewClient creates a new Web API client.
//
// Returns an error if the required TokenSource is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.TokenSource == nil {
		return nil, fmt.Errorf("webapi: TokenSource is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}

	return &Client{
		tokens:     cfg.TokenSource,
		cache:      cfg.Cache,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
		sleep:      sleep,
	}, nil
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
