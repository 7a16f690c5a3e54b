package cache

import (
	"container/list"
	"sync"

	"github.com/suryansh-23/piiscan/internal/pii"
)

type entry struct {
	text    string
	verdict pii.Verdict
}

// Cache memoizes verdicts by record text with LRU eviction.
// A nil or zero-capacity cache stores nothing.
type Cache struct {
	mu         sync.Mutex
	lru        *list.List
	byText     map[string]*list.Element
	maxEntries int
	hits       uint64
	misses     uint64
}

// New creates a cache bounded to maxEntries. A non-positive bound disables caching.
func New(maxEntries int) *Cache {
	return &Cache{
		lru:        list.New(),
		byText:     make(map[string]*list.Element),
		maxEntries: maxEntries,
	}
}

// Get returns the cached verdict for text.
func (c *Cache) Get(text string) (pii.Verdict, bool) {
	if c == nil {
		return pii.Verdict{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.byText[text]
	if !ok {
		c.misses++
		return pii.Verdict{}, false
	}
	c.hits++
	c.lru.MoveToFront(elem)
	return elem.Value.(entry).verdict, true
}

// Put stores a verdict if caching is enabled.
func (c *Cache) Put(text string, verdict pii.Verdict) {
	if c == nil || c.maxEntries <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.byText[text]; ok {
		elem.Value = entry{text: text, verdict: verdict}
		c.lru.MoveToFront(elem)
		return
	}
	c.byText[text] = c.lru.PushFront(entry{text: text, verdict: verdict})
	c.evictLocked()
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// SetMaxEntries updates the bound and evicts if needed.
func (c *Cache) SetMaxEntries(maxEntries int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxEntries = maxEntries
	c.evictLocked()
}

func (c *Cache) evictLocked() {
	limit := c.maxEntries
	if limit < 0 {
		limit = 0
	}
	for c.lru.Len() > limit {
		back := c.lru.Back()
		if back == nil {
			return
		}
		delete(c.byText, back.Value.(entry).text)
		c.lru.Remove(back)
	}
}
