package introspect

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/cricket-club/internal/domain/user"
)

type cachedPrincipal struct {
	principal user.Principal
	expiresAt time.Time
}

// principalCache holds verified principals keyed by token hash. A zero TTL disables it.
type principalCache struct {
	mu         sync.Mutex
	entries    map[string]cachedPrincipal
	ttl        time.Duration
	maxEntries int
	clock      clockwork.Clock
}

func newPrincipalCache(ttl time.Duration, maxEntries int, clock clockwork.Clock) *principalCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &principalCache{
		entries:    make(map[string]cachedPrincipal),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

func (c *principalCache) Get(key string) (user.Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return user.Principal{}, false
	}
	if !entry.expiresAt.After(c.clock.Now()) {
		delete(c.entries, key)
		return user.Principal{}, false
	}
	return entry.principal, true
}

func (c *principalCache) Set(key string, principal user.Principal) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		for k, entry := range c.entries {
			if !entry.expiresAt.After(now) {
				delete(c.entries, k)
			}
		}
		// still full: drop an arbitrary entry
		for k := range c.entries {
			if len(c.entries) < c.maxEntries {
				break
			}
			delete(c.entries, k)
		}
	}
	c.entries[key] = cachedPrincipal{principal: principal, expiresAt: now.Add(c.ttl)}
}

func (c *principalCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cachedPrincipal)
	c.mu.Unlock()
}
