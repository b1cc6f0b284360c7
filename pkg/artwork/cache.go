package artwork

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// CacheKey identifies one rendering of one file.
type CacheKey struct {
	Path     string
	ModTime  time.Time
	Protocol string
	Width    int
	Height   int
}

// String returns a human-readable key for logs.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%s:%dx%d", k.Protocol, k.Path, k.Width, k.Height)
}

// CacheStats reports hit and miss counts.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
	SizeBytes int64
}

type cacheEntry struct {
	key      CacheKey
	rendered string
}

// Cache is an LRU of rendered strings bounded by total byte size. Renders
// happen in tea.Cmd goroutines, so access is locked.
type Cache struct {
	mu        sync.Mutex
	items     map[CacheKey]*list.Element
	order     *list.List // front = most recent
	maxBytes  int64
	usedBytes int64
	stats     CacheStats
}

// NewCache creates a cache holding up to maxMB megabytes. maxMB <= 0 means
// 32 MB.
func NewCache(maxMB int) *Cache {
	if maxMB <= 0 {
		maxMB = 32
	}
	return &Cache{
		items:    make(map[CacheKey]*list.Element),
		order:    list.New(),
		maxBytes: int64(maxMB) << 20,
	}
}

// Get returns a cached rendering and promotes it.
func (c *Cache) Get(key CacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return "", false
	}
	c.order.MoveToFront(elem)
	c.stats.Hits++
	return elem.Value.(*cacheEntry).rendered, true
}

// Put stores a rendering, evicting least recently used entries to make
// room. A rendering larger than the whole cache is not stored.
func (c *Cache) Put(key CacheKey, rendered string) {
	size := int64(len(rendered))
	if size > c.maxBytes {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		old := elem.Value.(*cacheEntry)
		c.usedBytes += size - int64(len(old.rendered))
		old.rendered = rendered
		c.order.MoveToFront(elem)
	} else {
		c.items[key] = c.order.PushFront(&cacheEntry{key: key, rendered: rendered})
		c.usedBytes += size
	}
	for c.usedBytes > c.maxBytes && c.order.Len() > 1 {
		back := c.order.Back()
		e := c.order.Remove(back).(*cacheEntry)
		delete(c.items, e.key)
		c.usedBytes -= int64(len(e.rendered))
		c.stats.Evictions++
	}
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.order.Len()
	s.SizeBytes = c.usedBytes
	return s
}
