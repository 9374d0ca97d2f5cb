// Package cache provides the injected read-through cache for fetched set
// lists. The cache is passed to the placement engine by reference; it is
// never ambient module state, and eviction is defined (least recently
// used) rather than unbounded growth (docs/DECISIONS § injected cache).
package cache

import (
	"container/list"
	"sync"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// DefaultCapacity bounds the number of cached sets when the caller does
// not choose one. A full set list is a few hundred small records, so a
// handful of sets covers a curation session.
const DefaultCapacity = 8

// Compile-time interface check: SetCache must implement CardCache.
var _ types.CardCache = (*SetCache)(nil)

// SetCache is an LRU cache of set lists keyed by set ID. Safe for
// concurrent use.
type SetCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List               // front is most recently used
	index    map[string]*list.Element // setID -> element holding *setEntry
}

type setEntry struct {
	setID string
	cards []types.Card
}

// New returns a SetCache holding at most capacity sets. A capacity below
// one falls back to DefaultCapacity.
func New(capacity int) *SetCache {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &SetCache{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get returns the cached list for the set and marks it recently used.
// A miss is reported through the second return, never as an error.
func (c *SetCache) Get(setID string) ([]types.Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[setID]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*setEntry).cards, true
}

// Put stores the list for the set, evicting the least recently used set
// when the cache is full. Storing an already cached set refreshes it.
func (c *SetCache) Put(setID string, cards []types.Card) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[setID]; ok {
		elem.Value.(*setEntry).cards = cards
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*setEntry).setID)
		}
	}
	c.index[setID] = c.order.PushFront(&setEntry{setID: setID, cards: cards})
}

// Len returns the number of cached sets.
func (c *SetCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
