package suggest

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	c.Put("a", []Candidate{{Word: "A"}})
	c.Put("b", []Candidate{{Word: "B"}})

	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Put("c", []Candidate{{Word: "C"}})
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok, "b was the least recently used")

	keys := c.keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "c"}, keys)
	assert.Equal(t, 1, c.Stats()["cacheEvictions"])
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c := NewCache(1)
	c.Put("a", nil)
	c.Put("a", []Candidate{{Word: "A"}})

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []Candidate{{Word: "A"}}, got)
	assert.Equal(t, 0, c.Stats()["cacheEvictions"])
}

func TestNilCache(t *testing.T) {
	c := NewCache(0)
	assert.Nil(t, c)

	c.Put("a", []Candidate{{Word: "A"}})
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.keys())
	assert.Empty(t, c.Stats())
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(8)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := string(rune('a' + (i+j)%12))
				c.Put(key, []Candidate{{Word: key}})
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 8)
}
