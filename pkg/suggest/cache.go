package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
)

// Cache keeps ranked suggestion lists for recent queries. When full, the least
// recently used entry is evicted. A nil *Cache is a valid cache that stores nothing.
type Cache struct {
	entries     map[string][]Candidate
	accessTime  map[string]int64
	accessCount int64
	hits        int
	misses      int
	evictions   int
	maxEntries  int
	mu          sync.Mutex
}

// NewCache returns a cache holding at most maxEntries queries.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		return nil
	}
	return &Cache{
		entries:    make(map[string][]Candidate, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached list for word.
func (c *Cache) Get(word string) ([]Candidate, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	list, ok := c.entries[word]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.markAccessed(word)
	return list, true
}

// Put stores list under word. The caller must not modify list afterwards.
func (c *Cache) Put(word string, list []Candidate) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[word]; !ok && len(c.entries) >= c.maxEntries {
		c.evictLRU()
	}
	c.entries[word] = list
	c.markAccessed(word)
}

// keys returns the cached query words in no particular order.
func (c *Cache) keys() []string {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Keys(c.entries)
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) Stats() map[string]int {
	if c == nil {
		return map[string]int{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheEntries":   len(c.entries),
		"cacheMax":       c.maxEntries,
		"cacheHits":      c.hits,
		"cacheMisses":    c.misses,
		"cacheEvictions": c.evictions,
	}
}

func (c *Cache) markAccessed(word string) {
	c.accessCount++
	c.accessTime[word] = c.accessCount
}

func (c *Cache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = 9223372036854775807

	for word, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestWord = word
		}
	}

	if oldestWord != "" {
		delete(c.entries, oldestWord)
		delete(c.accessTime, oldestWord)
		c.evictions++
		log.Debugf("Evicted %q from suggestion cache", oldestWord)
	}
}
