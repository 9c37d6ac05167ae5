package cache

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Store is an in-process key-value store with optional per-entry expiry.
//
// Expired entries are removed two ways: a timer scheduled at Put time evicts
// the entry when its ttl elapses, and Get evicts an entry it finds past its
// deadline. Both paths are guarded so an entry is only ever counted out once.
type Store struct {
	mu       sync.Mutex
	entries  *gocache.Cache
	count    int
	hits     int
	misses   int
	debug    bool
	clock    clock.Clock
	logger   zerolog.Logger
	observer Observer
}

func newStore(cfg Config) *Store {
	cfg = cfg.withDefaults()
	return &Store{
		// Expiry is enforced by the store, so the map itself never expires
		// items and runs no janitor.
		entries:  gocache.New(gocache.NoExpiration, 0),
		debug:    cfg.Debug,
		clock:    cfg.Clock,
		logger:   *cfg.Logger,
		observer: cfg.Observer,
	}
}

// Put stores value under key and returns value.
// @group Store
//
// Without WithTTL the entry never expires. Re-putting an existing key
// replaces the entry and cancels its pending expiry.
//
// Example: put with ttl and expiry callback
//
//	s := cache.New()
//	_, err := s.Put("session:42", "Ada", cache.WithTTL(time.Minute),
//		cache.OnExpire(func(key string, value any) {
//			fmt.Println("expired", key)
//		}))
//	fmt.Println(err == nil) // true
func (s *Store) Put(key string, value any, opts ...PutOption) (any, error) {
	start := s.clock.Now()
	o := resolvePutOptions(opts)

	s.mu.Lock()
	if s.debug {
		ev := s.logger.Debug().Str("key", key).Interface("value", value).Time("at", start)
		if ttl, ok := o.ttl.Get(); ok {
			ev = ev.Dur("ttl", ttl)
		}
		ev.Msg("caching")
	}
	if err := o.validate(); err != nil {
		s.mu.Unlock()
		s.observe("put", key, false, err, start)
		return nil, err
	}

	if old, ok := s.lookup(key); ok {
		old.cancel()
	} else {
		s.count++
	}

	rec := &record{value: value, expireAt: mo.None[time.Time]()}
	if ttl, ok := o.ttl.Get(); ok {
		rec.expireAt = mo.Some(start.Add(ttl))
		rec.onExpire = o.onExpire.OrEmpty()
		// The timer action takes s.mu, so it cannot observe rec before
		// the assignment below completes.
		rec.timer = s.clock.AfterFunc(ttl, func() { s.expire(key, rec) })
	}
	s.entries.Set(key, rec, gocache.NoExpiration)
	s.mu.Unlock()

	s.observe("put", key, false, nil, start)
	return value, nil
}

// Get returns the value stored under key.
// @group Store
//
// A missing key counts as a miss. An entry found past its deadline is
// evicted on the spot and also counts as a miss.
//
// Example: get a value
//
//	s := cache.New()
//	_, _ = s.Put("user:42", "Ada")
//	value, ok := s.Get("user:42")
//	fmt.Println(ok, value) // true Ada
func (s *Store) Get(key string) (any, bool) {
	start := s.clock.Now()

	s.mu.Lock()
	value, ok := s.get(key, start)
	s.mu.Unlock()

	s.observe("get", key, ok, nil, start)
	return value, ok
}

func (s *Store) get(key string, now time.Time) (any, bool) {
	rec, ok := s.lookup(key)
	if !ok {
		s.misses++
		return nil, false
	}
	if rec.expired(now) {
		s.misses++
		s.remove(key)
		if s.debug {
			s.logger.Debug().Str("key", key).Time("at", now).Msg("evicted")
		}
		return nil, false
	}
	s.hits++
	return rec.value, true
}

// Lookup is Get expressed as an optional value.
// @group Store
func (s *Store) Lookup(key string) mo.Option[any] {
	value, ok := s.Get(key)
	if !ok {
		return mo.None[any]()
	}
	return mo.Some(value)
}

// GetAs returns the value under key asserted to T. A value of another type
// is reported as absent; a stored nil yields the zero T.
// @group Store
//
// Example: typed read
//
//	s := cache.New()
//	_, _ = s.Put("count", 3)
//	n, ok := cache.GetAs[int](s, "count")
//	fmt.Println(ok, n) // true 3
func GetAs[T any](s *Store, key string) (T, bool) {
	var zero T
	value, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	if value == nil {
		return zero, true
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Delete removes key and reports whether an entry was removed.
// @group Store
//
// The pending expiry is always cancelled first. An entry whose deadline has
// already passed is not removed: Delete returns false and the entry stays
// until the next Get or Clear.
func (s *Store) Delete(key string) bool {
	start := s.clock.Now()

	s.mu.Lock()
	deleted := false
	if rec, ok := s.lookup(key); ok {
		rec.cancel()
		if !rec.expired(start) {
			s.remove(key)
			deleted = true
		}
	}
	s.mu.Unlock()

	s.observe("delete", key, deleted, nil, start)
	return deleted
}

// Clear cancels every pending expiry and resets entries, size, hits and
// misses. The debug flag is left as is.
// @group Store
func (s *Store) Clear() {
	start := s.clock.Now()

	s.mu.Lock()
	for _, item := range s.entries.Items() {
		if rec, ok := item.Object.(*record); ok {
			rec.cancel()
		}
	}
	s.entries.Flush()
	s.count = 0
	s.hits = 0
	s.misses = 0
	s.mu.Unlock()

	s.observe("clear", "", false, nil, start)
}

// MemSize counts the stored keys by enumerating them. Unlike Size it is not
// a maintained counter.
// @group Stats
func (s *Store) MemSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for range s.entries.Items() {
		n++
	}
	return n
}

// Size returns the maintained entry count.
// @group Stats
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Hits returns the number of successful reads since creation or the last Clear.
// @group Stats
func (s *Store) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits
}

// Misses returns the number of failed reads since creation or the last Clear.
// @group Stats
func (s *Store) Misses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.misses
}

// Keys returns a snapshot of the stored keys in no particular order.
// @group Stats
func (s *Store) Keys() []string {
	s.mu.Lock()
	items := s.entries.Items()
	s.mu.Unlock()

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	return keys
}

// Debug turns diagnostic logging on or off.
// @group Store
func (s *Store) Debug(enable bool) {
	s.mu.Lock()
	s.debug = enable
	s.mu.Unlock()
}

// expire is the timer action scheduled by Put for rec.
func (s *Store) expire(key string, rec *record) {
	start := s.clock.Now()

	s.mu.Lock()
	if rec.cancelled {
		s.mu.Unlock()
		return
	}
	rec.cancelled = true
	removed := false
	// A read may already have evicted rec, and the key may hold a newer
	// record since; only rec itself is removed here.
	if cur, ok := s.lookup(key); ok && cur == rec {
		s.remove(key)
		removed = true
	}
	if s.debug {
		s.logger.Debug().Str("key", key).Bool("removed", removed).Time("at", start).Msg("expired")
	}
	s.mu.Unlock()

	s.observe("expire", key, removed, nil, start)
	if rec.onExpire != nil {
		rec.onExpire(key, rec.value)
	}
}

func (s *Store) lookup(key string) (*record, bool) {
	item, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}
	rec, ok := item.(*record)
	return rec, ok
}

func (s *Store) remove(key string) {
	s.entries.Delete(key)
	s.count--
}

func (s *Store) observe(op, key string, hit bool, err error, start time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.OnStoreOp(op, key, hit, err, s.clock.Since(start))
}
