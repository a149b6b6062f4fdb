package pathcache

import (
	"sync"

	"honnef.co/go/squircle"
)

// DefaultCapacity is the capacity used by [New] for non-positive arguments.
const DefaultCapacity = 256

type key struct {
	squircle.Key
	precision int
}

type entry struct {
	path string
	node *lruNode[key]
}

// Cache is a bounded LRU cache of serialized outlines.
type Cache struct {
	mu       sync.Mutex
	entries  map[key]*entry
	lru      lruList[key]
	capacity int

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most capacity outlines. A capacity of 0 or
// less selects [DefaultCapacity].
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[key]*entry, capacity),
		capacity: capacity,
	}
}

// Path returns the path data of the outline described by p, formatted with
// [squircle.DefaultPrecision] fractional digits. It is equivalent to
// [squircle.SVGPath], computing the outline only if it isn't cached yet.
//
// Invalid parameters are reported the same way as by [squircle.SVGPath] and
// are not cached.
func (c *Cache) Path(p squircle.Params) (string, error) {
	return c.PathPrecision(p, squircle.DefaultPrecision)
}

// PathPrecision is like [Cache.Path] but formats coordinates with at most
// precision fractional digits. See [squircle.SVGOptions].
func (c *Cache) PathPrecision(p squircle.Params, precision int) (string, error) {
	k, err := p.Resolve()
	if err != nil {
		return "", err
	}
	ck := key{k, precision}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[ck]; ok {
		c.hits++
		c.lru.MoveToFront(e.node)
		return e.path, nil
	}
	c.misses++

	// Computed under the lock; concurrent misses for one key compute once.
	path := k.Path().SVG(squircle.SVGOptions{MaxPrecision: precision})
	c.entries[ck] = &entry{path: path, node: c.lru.PushFront(ck)}
	for c.lru.Len() > c.capacity {
		c.evictOldest()
	}
	return path, nil
}

// Get returns the cached path data for p at the default precision without
// computing it. It does not count as a hit or a miss.
func (c *Cache) Get(p squircle.Params) (string, bool) {
	k, err := p.Resolve()
	if err != nil {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key{k, squircle.DefaultPrecision}]
	if !ok {
		return "", false
	}
	c.lru.MoveToFront(e.node)
	return e.path, true
}

// Len returns the number of cached outlines.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the maximum number of cached outlines.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Purge removes all entries. Statistics are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[key]*entry, c.capacity)
	c.lru.Clear()
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// evictOldest removes the least recently used entry.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	k, ok := c.lru.RemoveOldest()
	if !ok {
		return
	}
	delete(c.entries, k)
	c.evictions++
	squircle.Logger().Debug("pathcache: evicted outline",
		"width", k.Rect.Width,
		"height", k.Rect.Height,
		"entries", len(c.entries))
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of lookups by [Cache.Path] that found an entry.
	Hits uint64
	// Misses is the number of lookups by [Cache.Path] that computed an
	// outline.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
	// Evictions is the number of entries removed to stay within capacity.
	Evictions uint64
}
