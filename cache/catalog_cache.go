package catalog_cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/phnam24/frontend-v1-sub001/filters"
	"github.com/phnam24/frontend-v1-sub001/models"
)

const DefaultTTL = 5 * time.Minute

// ── Filtered listing cache ───────────────────────────────────────────────────
// Keyed by the filter selection only; sorting happens after the read so every
// sort order of one selection shares an entry.

type entry struct {
	products  []models.Product
	fetchedAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, entries: make(map[string]entry), now: time.Now}
}

// Key derives the cache key of a selection, ignoring its sort order. A
// selection that cannot be encoded (a NaN price) has no key.
func Key(c filters.Criteria) (string, error) {
	c = c.Normalize()
	c.SortBy = ""
	blob, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("catalog cache key: %w", err)
	}
	return string(blob), nil
}

func (c *Cache) Get(key string) ([]models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.products, true
	}
	return nil, false
}

func (c *Cache) Set(key string, products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{products: products, fetchedAt: c.now()}
	c.evictExpiredLocked()
}

// ── Invalidate everything (call on any catalog write) ────────────────────────

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) evictExpiredLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}
