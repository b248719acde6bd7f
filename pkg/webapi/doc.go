// Package webapi provides a client for the Spotify Web API as used by a
// desktop music client.
//
// # Overview
//
// The package is the request orchestration layer between the application
// and the catalog: it builds authenticated requests, waits out rate limits,
// caches responses, aggregates paginated result sets and normalizes the
// responses of individual endpoints.
//
// # Quick Start
//
//	import "github.com/jfmyers9/spindle/pkg/webapi"
//
//	client, err := webapi.NewClient(webapi.Config{
//	    TokenSource: tokenSource, // any oauth2.TokenSource
//	    Cache:       store,       // optional webapi.CacheStore
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	artist, err := client.GetArtist(ctx, "0OdUWJ0sBjDrqHygGUXeCF")
//
// # Rate Limiting
//
// A 429 response is retried after the delay in its Retry-After header, or
// two seconds when the header is missing. There is no attempt limit: a
// caller that must give up eventually should pass a context with a
// deadline, which also interrupts the wait.
//
// # Caching
//
// Artists, albums, related artists and audio analyses are cached through
// the configured CacheStore. A cached entry is always used, no matter how
// old; Cached reports where a value came from. Writes to the store are
// best effort and never fail a call.
//
// # Pagination
//
// Listing endpoints (saved albums and tracks, playlists, playlist tracks,
// artist albums) load pages of 50 until the full set is collected or 200
// items have been read. Longer result sets are truncated.
//
// # Error Handling
//
// Failures are reported as typed errors:
//
//	_, err := client.GetTrack(ctx, id)
//	var statusErr *webapi.StatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
//	    // no such track
//	}
//
// AuthError, TransportError, StatusError, DecodeError and ResolutionError
// cover credential, network, HTTP, decoding and consistency failures.
//
// # Global Client
//
// An application typically builds one client at startup and installs it
// with Install. Installing twice is an error.
package webapi
