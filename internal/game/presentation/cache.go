package presentation

import (
	"slices"
	"strings"
	"sync"

	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

// Observable is the change feed of an inventory store.
type Observable interface {
	Subscribe(fn func(inventory.Change)) func()
}

// CacheStats counts cache outcomes.
type CacheStats struct {
	Hits          int `json:"hits"`
	Misses        int `json:"misses"`
	Invalidations int `json:"invalidations"`
}

// Cache holds the most recent Result for an equipped source. An entry is
// reused only while both the equipped hash and the Context match.
type Cache struct {
	mu       sync.Mutex
	engine   *Engine
	equipped func() []string

	valid  bool
	key    string
	ctx    Context
	result Result
	stats  CacheStats
}

// NewCache caches engine evaluations of whatever equipped returns.
//
// Precondition: engine and equipped non-nil.
func NewCache(engine *Engine, equipped func() []string) *Cache {
	return &Cache{engine: engine, equipped: equipped}
}

// Hash returns the order-independent key of an equipped set.
func Hash(equipped []string) string {
	ids := make([]string, 0, len(equipped))
	for _, id := range equipped {
		if id != "" {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return strings.Join(ids, ",")
}

// Get returns the Result for the current equipped set under ctx, computing
// it only when the cached entry is missing or stale.
func (c *Cache) Get(ctx Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	equipped := c.equipped()
	key := Hash(equipped)
	if c.valid && c.key == key && c.ctx == ctx {
		c.stats.Hits++
		return c.result
	}
	c.stats.Misses++
	c.result = c.engine.Evaluate(equipped, ctx)
	c.key = key
	c.ctx = ctx
	c.valid = true
	return c.result
}

// Invalidate drops the cached entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.stats.Invalidations++
}

// Observe invalidates the cache whenever src reports a change to the
// equipped collection.
//
// Postcondition: the returned func stops observing.
func (c *Cache) Observe(src Observable) func() {
	return src.Subscribe(func(ch inventory.Change) {
		if ch.Equipped() {
			c.Invalidate()
		}
	})
}

// Stats returns the hit, miss and invalidation counts.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
