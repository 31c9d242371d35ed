package leveling

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cooldownCache tracks each member's last XP award in a bounded expirable
// LRU. The cache is process-local: after a restart every member is simply
// eligible again, which errs in the member's favor.
type cooldownCache struct {
	lru *expirable.LRU[string, time.Time]
	now func() time.Time
}

func newCooldownCache(size int, ttl time.Duration) *cooldownCache {
	return &cooldownCache{
		lru: expirable.NewLRU[string, time.Time](size, nil, ttl),
		now: time.Now,
	}
}

// Allow reports whether the member is off cooldown and, if so, records a
// fresh award timestamp.
func (c *cooldownCache) Allow(guildID, userID string, cooldown time.Duration) bool {
	key := guildID + ":" + userID
	now := c.now()
	if last, ok := c.lru.Get(key); ok && now.Sub(last) < cooldown {
		return false
	}
	c.lru.Add(key, now)
	return true
}
