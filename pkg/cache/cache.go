package cache

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/uaparse/pkg/logger"
	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

// Store is a shared second tier behind the in-memory LRU, e.g. Redis.
// A miss is reported as (zero, false, nil).
type Store interface {
	Get(ctx context.Context, ua string) (useragent.Result, bool, error)
	Set(ctx context.Context, ua string, res useragent.Result) error
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	StoreHits   uint64 `json:"store_hits"`
	StoreErrors uint64 `json:"store_errors"`
	Size        int    `json:"size"`
}

// Key hashes a User-Agent string into the cache key used by Cache and
// by Store implementations.
func Key(ua string) uint64 {
	return xxhash.Sum64String(ua)
}

type entry struct {
	key uint64
	ua  string
	res useragent.Result
}

// Cache memoises classification results in a thread-safe LRU.
// When the cache reaches its capacity, the least recently used result is
// evicted.
type Cache struct {
	capacity int
	items    map[uint64]*list.Element
	eviction *list.List
	mu       sync.Mutex

	parse  useragent.ParseFunc
	store  Store
	logger *slog.Logger
	flight singleflight.Group

	hits        atomic.Uint64
	misses      atomic.Uint64
	storeHits   atomic.Uint64
	storeErrors atomic.Uint64
}

// New creates a cache holding at most capacity results.
// The capacity must be positive, otherwise it panics.
func New(capacity int, opts ...Option) *Cache {
	if capacity <= 0 {
		panic("cache capacity must be positive")
	}
	c := &Cache{
		capacity: capacity,
		items:    make(map[uint64]*list.Element, capacity),
		eviction: list.New(),
		parse:    useragent.Parse,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse returns the cached classification of ua, computing and storing it
// on a miss. Concurrent misses for the same string are classified once.
// Store failures are logged and counted, never returned.
func (c *Cache) Parse(ctx context.Context, ua string) useragent.Result {
	key := Key(ua)
	if res, ok := c.get(key, ua); ok {
		c.hits.Add(1)
		return res
	}
	c.misses.Add(1)

	v, _, _ := c.flight.Do(ua, func() (any, error) {
		if c.store != nil {
			res, ok, err := c.store.Get(ctx, ua)
			switch {
			case err != nil:
				c.storeErrors.Add(1)
				c.logger.WarnContext(ctx, "result store read failed", logger.Error(err))
			case ok:
				c.storeHits.Add(1)
				c.put(key, ua, res)
				return res, nil
			}
		}

		res := c.parse(ua)
		c.put(key, ua, res)

		if c.store != nil {
			if err := c.store.Set(ctx, ua, res); err != nil {
				c.storeErrors.Add(1)
				c.logger.WarnContext(ctx, "result store write failed", logger.Error(err))
			}
		}
		return res, nil
	})
	return v.(useragent.Result)
}

// ParseFunc adapts the cache to useragent.ParseFunc, for use with
// useragent.NewMiddleware.
func (c *Cache) ParseFunc() useragent.ParseFunc {
	return func(ua string) useragent.Result {
		return c.Parse(context.Background(), ua)
	}
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		StoreHits:   c.storeHits.Load(),
		StoreErrors: c.storeErrors.Load(),
		Size:        c.Len(),
	}
}

// Clear drops every cached result. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[uint64]*list.Element, c.capacity)
	c.eviction.Init()
}

func (c *Cache) get(key uint64, ua string) (useragent.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return useragent.Result{}, false
	}
	e := elem.Value.(*entry)
	// Hash collision: treat as a miss, the new string will replace it.
	if e.ua != ua {
		return useragent.Result{}, false
	}
	c.eviction.MoveToFront(elem)
	return e.res, true
}

func (c *Cache) put(key uint64, ua string, res useragent.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		e := elem.Value.(*entry)
		e.ua, e.res = ua, res
		return
	}

	c.items[key] = c.eviction.PushFront(&entry{key: key, ua: ua, res: res})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
}

// Must be called with lock held.
func (c *Cache) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*entry).key)
}
