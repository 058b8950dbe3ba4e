// Package cache is a small in-memory TTL cache for purchase-count results.
//
// Entries are valid for a fixed duration after they are stored and are never
// refreshed ahead of expiry. There is no eviction beyond overwrite: the map
// grows with the number of distinct (product, period) pairs ever queried,
// which is bounded by catalog size.
package cache

import (
	"sync"
	"time"

	"salesbadge/internal/metrics"
	"salesbadge/internal/models"
)

// Entry is one stored result with its storage time.
type Entry struct {
	Result   models.CountResult
	StoredAt time.Time
}

// Cache maps query keys to entries under a mutex. Two concurrent misses for
// the same key may both recompute; that is wasteful but harmless, and the
// lock keeps the map itself consistent.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]Entry
}

// New creates a cache with the given TTL.
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock creates a cache with an injected clock so tests can control
// entry aging.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]Entry),
	}
}

// Key derives the stable cache key for a count query.
func Key(productID string, period models.Period) string {
	return productID + ":" + period.String()
}

// Get returns the stored result if the entry exists and is younger than the
// TTL. Expired entries are treated as absent; the stale value stays in the
// map until the next Set overwrites it.
func (c *Cache) Get(key string) (models.CountResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		metrics.RecordCacheEvent("miss")
		return models.CountResult{}, false
	}
	if c.now().Sub(entry.StoredAt) >= c.ttl {
		metrics.RecordCacheEvent("expired")
		return models.CountResult{}, false
	}

	metrics.RecordCacheEvent("hit")
	return entry.Result, true
}

// Set stores a result keyed by key with the current time.
func (c *Cache) Set(key string, result models.CountResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{Result: result, StoredAt: c.now()}
}

// Len returns the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
