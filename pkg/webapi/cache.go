package webapi

import (
	"context"
	"time"
)

// Cache buckets used by the endpoint operations.
const (
	BucketArtist         = "artist"
	BucketRelatedArtists = "related-artists"
	BucketAlbum          = "album"
	BucketAudioAnalysis  = "audio-analysis"
)

// CacheEntry is a stored response body.
type CacheEntry struct {
	Data     []byte
	Modified time.Time
}

// CacheStore persists raw response bodies by bucket and key.
//
// Implementations must be safe for concurrent use. Set is best effort:
// the client logs and discards its error, a failed write never fails
// the call that produced the value.
type CacheStore interface {
	// Get returns the entry for bucket/key and whether it was found.
	Get(ctx context.Context, bucket, key string) (CacheEntry, bool)

	// Set stores data under bucket/key, replacing any previous entry.
	Set(ctx context.Context, bucket, key string, data []byte) error
}
