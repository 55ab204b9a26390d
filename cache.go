package gesture

import (
	"container/list"
	"iter"
	"strconv"
	"time"
)

// CacheKey identifies a slot in the pointer cache. It is either the single
// reserved primary slot or a secondary slot for one contact id; a contact id
// can never collide with the primary slot.
type CacheKey struct {
	id      int
	primary bool
}

// PrimaryKey returns the reserved slot shared by whichever contact is
// currently primary.
func PrimaryKey() CacheKey { return CacheKey{primary: true} }

// ContactKey returns the slot for a secondary contact.
func ContactKey(id int) CacheKey { return CacheKey{id: id} }

// KeyFor collapses a contact into its slot: primary contacts share the
// primary slot regardless of id.
func KeyFor(id int, primary bool) CacheKey {
	if primary {
		return PrimaryKey()
	}
	return ContactKey(id)
}

// IsPrimary reports whether k is the primary slot.
func (k CacheKey) IsPrimary() bool { return k.primary }

// ContactID returns the contact id of a secondary slot. ok is false for the
// primary slot.
func (k CacheKey) ContactID() (id int, ok bool) {
	if k.primary {
		return 0, false
	}
	return k.id, true
}

// String renders the key for logs.
func (k CacheKey) String() string {
	if k.primary {
		return "primary"
	}
	return "contact:" + strconv.Itoa(k.id)
}

// MarshalText renders the key as String does, so reports encode slots
// readably.
func (k CacheKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// CacheStats counts cache outcomes since creation.
type CacheStats struct {
	Hits        uint64 // Get found a live entry
	Misses      uint64 // Get found nothing or an expired entry
	Evictions   uint64 // entries dropped for capacity
	Expirations uint64 // entries dropped for age
}

// EvictFunc observes an entry leaving the cache. expired is true when the
// entry outlived the TTL and false when it was pushed out for capacity.
type EvictFunc[K comparable, V any] func(key K, value V, expired bool)

type cacheEntry[K comparable, V any] struct {
	key            K
	value          V
	insertedAt     time.Time
	lastAccessedAt time.Time
}

// ExpiringLRU is a fixed-capacity least-recently-used map whose entries also
// expire a fixed time after they were last Set. Expiry is checked lazily on
// access; Prune sweeps eagerly.
//
// ExpiringLRU is not safe for concurrent use. Get reorders entries, so even
// readers must be serialized.
type ExpiringLRU[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	onEvict  EvictFunc[K, V]

	ll    *list.List // front is most recently used
	items map[K]*list.Element
	stats CacheStats
}

// PointerCache holds the latest displacement record for each active slot.
type PointerCache = ExpiringLRU[CacheKey, DisplacementRecord]

// CacheOption configures an ExpiringLRU.
type CacheOption[K comparable, V any] func(*ExpiringLRU[K, V])

// WithClock replaces time.Now as the cache's time source.
func WithClock[K comparable, V any](now func() time.Time) CacheOption[K, V] {
	return func(c *ExpiringLRU[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// WithEvictCallback registers fn to observe capacity and TTL evictions.
// Explicit Remove and Clear do not invoke it.
func WithEvictCallback[K comparable, V any](fn EvictFunc[K, V]) CacheOption[K, V] {
	return func(c *ExpiringLRU[K, V]) {
		c.onEvict = fn
	}
}

// NewExpiringLRU creates a cache holding at most capacity entries, each
// living at most ttl after its last Set.
func NewExpiringLRU[K comparable, V any](capacity int, ttl time.Duration, opts ...CacheOption[K, V]) (*ExpiringLRU[K, V], error) {
	if capacity <= 0 {
		return nil, &ConfigError{Field: "CacheCapacity", Reason: "must be greater than 0"}
	}
	if ttl <= 0 {
		return nil, &ConfigError{Field: "CacheTTL", Reason: "must be greater than 0"}
	}
	c := &ExpiringLRU[K, V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Capacity returns the maximum number of entries.
func (c *ExpiringLRU[K, V]) Capacity() int { return c.capacity }

// TTL returns the maximum entry age.
func (c *ExpiringLRU[K, V]) TTL() time.Duration { return c.ttl }

// Len returns the number of entries, including expired entries that have not
// been touched since they expired.
func (c *ExpiringLRU[K, V]) Len() int { return c.ll.Len() }

// Stats returns a copy of the outcome counters.
func (c *ExpiringLRU[K, V]) Stats() CacheStats { return c.stats }

// Set inserts or replaces the value for key, marks it most recently used and
// restarts its age. Inserting a new key into a full cache first evicts
// expired entries and then, if the cache is still full, the least recently
// used entry.
func (c *ExpiringLRU[K, V]) Set(key K, value V) {
	now := c.now()
	if el, ok := c.items[key]; ok {
		e := el.Value.(*cacheEntry[K, V])
		e.value = value
		e.insertedAt = now
		e.lastAccessedAt = now
		c.ll.MoveToFront(el)
		return
	}
	if c.ll.Len() >= c.capacity {
		c.pruneAt(now)
	}
	if c.ll.Len() >= c.capacity {
		if back := c.ll.Back(); back != nil {
			c.evict(back, false)
		}
	}
	e := &cacheEntry[K, V]{key: key, value: value, insertedAt: now, lastAccessedAt: now}
	c.items[key] = c.ll.PushFront(e)
}

// Get returns the value for key and marks it most recently used. An entry
// older than the TTL is evicted and reported absent.
func (c *ExpiringLRU[K, V]) Get(key K) (V, bool) {
	var zero V
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return zero, false
	}
	now := c.now()
	e := el.Value.(*cacheEntry[K, V])
	if c.expired(e, now) {
		c.evict(el, true)
		c.stats.Misses++
		return zero, false
	}
	e.lastAccessedAt = now
	c.ll.MoveToFront(el)
	c.stats.Hits++
	return e.value, true
}

// Peek is Get without the recency update. Expired entries are still evicted.
func (c *ExpiringLRU[K, V]) Peek(key K) (V, bool) {
	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, false
	}
	e := el.Value.(*cacheEntry[K, V])
	if c.expired(e, c.now()) {
		c.evict(el, true)
		return zero, false
	}
	return e.value, true
}

// All returns a sequence over live entries, most recently used first.
// Expired entries met along the way are evicted. Each range over the
// sequence walks the cache afresh. The cache must not be modified from
// inside the loop body.
func (c *ExpiringLRU[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		now := c.now()
		for el := c.ll.Front(); el != nil; {
			next := el.Next()
			e := el.Value.(*cacheEntry[K, V])
			if c.expired(e, now) {
				c.evict(el, true)
			} else if !yield(e.key, e.value) {
				return
			}
			el = next
		}
	}
}

// Remove deletes key without invoking the eviction callback. It reports
// whether the key was present.
func (c *ExpiringLRU[K, V]) Remove(key K) bool {
	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.ll.Remove(el)
	delete(c.items, key)
	return true
}

// Prune evicts every expired entry and returns how many were removed.
func (c *ExpiringLRU[K, V]) Prune() int {
	return c.pruneAt(c.now())
}

func (c *ExpiringLRU[K, V]) pruneAt(now time.Time) int {
	n := 0
	for el := c.ll.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*cacheEntry[K, V]), now) {
			c.evict(el, true)
			n++
		}
		el = prev
	}
	return n
}

// Clear drops every entry without invoking the eviction callback.
func (c *ExpiringLRU[K, V]) Clear() {
	c.ll.Init()
	clear(c.items)
}

func (c *ExpiringLRU[K, V]) expired(e *cacheEntry[K, V], now time.Time) bool {
	return now.Sub(e.insertedAt) > c.ttl
}

func (c *ExpiringLRU[K, V]) evict(el *list.Element, expired bool) {
	e := el.Value.(*cacheEntry[K, V])
	c.ll.Remove(el)
	delete(c.items, e.key)
	if expired {
		c.stats.Expirations++
	} else {
		c.stats.Evictions++
	}
	if c.onEvict != nil {
		c.onEvict(e.key, e.value, expired)
	}
}
