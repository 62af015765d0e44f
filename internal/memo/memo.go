// Package memo is the optional caching layer in front of the aggregators.
// The aggregators themselves stay pure; callers key cached results on the
// dataset version plus the scope, so a data reload naturally invalidates
// everything computed before it.
package memo

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/bytedance/sonic"
)

type entry struct {
	version uint64
	value   any
}

// Cache is a bounded memo table. Entries from superseded dataset versions
// are dropped as new versions arrive; on overflow the whole table resets,
// which is cheap because every entry is recomputable.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[string]entry
}

// New builds a cache bounded to max entries. max <= 0 falls back to 256.
func New(max int) *Cache {
	if max <= 0 {
		max = 256
	}
	return &Cache{max: max, entries: make(map[string]entry)}
}

// Key derives a stable cache key from a name, the dataset version and any
// serializable scope value.
func Key(name string, version uint64, scope any) string {
	raw, err := sonic.Marshal(scope)
	if err != nil {
		// Scope values are plain structs; this path exists only for safety.
		raw = []byte(fmt.Sprintf("%+v", scope))
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	h.Write(raw)
	return fmt.Sprintf("%s:%d:%x", name, version, h.Sum64())
}

// Get returns a cached value.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores a value computed against the given dataset version, dropping
// entries from older versions first.
func (c *Cache) Set(key string, version uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if e.version < version {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= c.max {
		c.entries = make(map[string]entry)
	}
	c.entries[key] = entry{version: version, value: value}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
