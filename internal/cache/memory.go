// internal/cache/memory.go
package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// MemoryCache is an in-process KeyValueCache backed by a bounded LRU. It is
// the default backend when no MongoDB cache is configured; entries are local
// to the process, so a multi-instance deployment should prefer MongoCache.
type MemoryCache struct {
	entries *lru.Cache[string, memoryEntry]
}

func NewMemoryCache(capacity int) (*MemoryCache, error) {
	entries, err := lru.New[string, memoryEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{entries: entries}, nil
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.entries.Remove(key)
		return nil, ErrMiss
	}
	return entry.value, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttlSeconds int) error {
	if ttlSeconds == 0 {
		return nil
	}
	entry := memoryEntry{value: value}
	if ttlSeconds > 0 {
		entry.expiresAt = time.Now().Add(time.Duration(ttlSeconds) * time.Second)
	}
	c.entries.Add(key, entry)
	return nil
}
