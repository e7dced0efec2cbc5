package news

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache memoizes adapter results for the configured TTL. The zero cleanup
// interval disables the background janitor; expired entries are treated as
// absent on Get and only ever dropped lazily.
type Cache struct {
	store *cache.Cache
}

// NewCache creates a cache whose entries expire after ttl. A non-positive
// ttl falls back to one hour.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{store: cache.New(ttl, 0)}
}

// Get returns the cached items for key, or false when absent or expired.
func (c *Cache) Get(key string) ([]Item, bool) {
	v, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	items, ok := v.([]Item)
	if !ok {
		return nil, false
	}
	return items, true
}

// Put stores items under key with the default TTL.
func (c *Cache) Put(key string, items []Item) {
	c.store.SetDefault(key, items)
}

// CacheKey namespaces an adapter's result per symbol and item budget.
func CacheKey(source, symbol string, maxItems int) string {
	return fmt.Sprintf("%s:%s:%d", source, symbol, maxItems)
}
