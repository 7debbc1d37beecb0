package query

import (
	"context"
	"sync"
)

// Entry is a cached payload. Stale entries are kept as last-known-good
// data but are refetched on the next read.
type Entry struct {
	Data  []byte
	Stale bool
}

// Cache stores encoded query results. Every key carries a version that
// Invalidate bumps; Set only stores a fresh entry when the version it was
// given is still current, so a fetch that started before an invalidation
// cannot overwrite it with older data.
type Cache interface {
	Get(ctx context.Context, key Key) (Entry, bool, error)
	Version(ctx context.Context, key Key) (int64, error)
	Set(ctx context.Context, key Key, data []byte, version int64) error
	Invalidate(ctx context.Context, keys ...Key) error
}

// MemoryCache is a process-local Cache.
type MemoryCache struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	versions map[string]int64
}

// NewMemoryCache builds an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Entry), versions: make(map[string]int64)}
}

// Get returns the entry for key.
func (c *MemoryCache) Get(ctx context.Context, key Key) (Entry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key.String()]
	return entry, ok, nil
}

// Version returns the current version of key.
func (c *MemoryCache) Version(ctx context.Context, key Key) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.versions[key.String()], nil
}

// Set stores a fresh entry when version is current. An outdated write is
// dropped, or kept as a stale entry when nothing is cached yet.
func (c *MemoryCache) Set(ctx context.Context, key Key, data []byte, version int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := key.String()
	entry := Entry{Data: append([]byte(nil), data...)}
	if c.versions[k] != version {
		if _, ok := c.entries[k]; ok {
			return nil
		}
		entry.Stale = true
	}
	c.entries[k] = entry
	return nil
}

// Invalidate bumps the versions and marks entries stale.
func (c *MemoryCache) Invalidate(ctx context.Context, keys ...Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		c.versions[key.String()]++
		if entry, ok := c.entries[key.String()]; ok {
			entry.Stale = true
			c.entries[key.String()] = entry
		}
	}
	return nil
}
