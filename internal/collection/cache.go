package collection

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// powerCache is a TTL LRU over per-user total power. Power only changes on
// pull or raid transfer, both of which invalidate explicitly; the TTL is a
// backstop against missed invalidations.
type powerCache struct {
	lru *expirable.LRU[string, int]
}

// newPowerCache creates a cache holding up to size users for at most ttl.
func newPowerCache(size int, ttl time.Duration) *powerCache {
	return &powerCache{
		lru: expirable.NewLRU[string, int](size, nil, ttl),
	}
}

func (c *powerCache) Get(userID string) (int, bool) {
	return c.lru.Get(userID)
}

func (c *powerCache) Set(userID string, power int) {
	c.lru.Add(userID, power)
}

func (c *powerCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
