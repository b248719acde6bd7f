package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jfmyers9/spindle/pkg/webapi"
)

// MemoryStore is a process-local response cache. Entries live until the
// process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]webapi.CacheEntry
	now     func() time.Time
}

var _ webapi.CacheStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]webapi.CacheEntry),
		now:     time.Now,
	}
}

func memoryKey(bucket, key string) string {
	return bucket + "|" + key
}

// Get returns the entry for bucket/key.
func (m *MemoryStore) Get(ctx context.Context, bucket, key string) (webapi.CacheEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[memoryKey(bucket, key)]
	return e, ok
}

// Set stores a copy of data under bucket/key.
func (m *MemoryStore) Set(ctx context.Context, bucket, key string, data []byte) error {
	entry := webapi.CacheEntry{
		Data:     append([]byte(nil), data...),
		Modified: m.now(),
	}

	m.mu.Lock()
	m.entries[memoryKey(bucket, key)] = entry
	m.mu.Unlock()
	return nil
}

// Len returns the number of cached entries.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
