package cachefake

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	cache "github.com/easybird/easy-memory-cache"
)

// Op identifies a store operation for assertions.
type Op string

const (
	OpPut    Op = "put"
	OpGet    Op = "get"
	OpDelete Op = "delete"
	OpClear  Op = "clear"
	OpExpire Op = "expire"
)

// settleTimeout bounds how long assertions wait for expiry timers, which
// run on their own goroutines after the mock clock advances.
const settleTimeout = time.Second

// Fake exposes a store on a mock clock plus assertion helpers for tests.
// Time only moves when Advance is called.
type Fake struct {
	store  *cache.Store
	clock  *clock.Mock
	counts map[Op]map[string]int
	mu     sync.Mutex
}

// New creates a Fake. Extra options are applied after the mock clock and the
// recording observer, so passing cache.WithObserver disables call counting.
func New(opts ...cache.Option) *Fake {
	f := &Fake{
		clock:  clock.NewMock(),
		counts: make(map[Op]map[string]int),
	}
	base := []cache.Option{
		cache.WithClock(f.clock),
		cache.WithObserver(cache.ObserverFunc(f.observe)),
	}
	f.store = cache.New(append(base, opts...)...)
	return f
}

// Store returns the store to inject into code under test.
func (f *Fake) Store() *cache.Store { return f.store }

// Clock returns the mock clock driving the store.
func (f *Fake) Clock() *clock.Mock { return f.clock }

// Advance moves the mock clock forward, firing any expiry timers that fall due.
func (f *Fake) Advance(d time.Duration) { f.clock.Add(d) }

// Reset clears recorded counts.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]map[string]int)
}

// AssertCalled verifies key was touched by op the expected number of times.
// Expire events are waited for briefly since they arrive asynchronously.
func (f *Fake) AssertCalled(t testing.TB, op Op, key string, times int) {
	t.Helper()
	if !f.waitFor(func() bool { return f.Count(op, key) == times }) {
		t.Fatalf("expected %s %q called %d times, got %d", op, key, times, f.Count(op, key))
	}
}

// AssertNotCalled ensures key was never touched by op.
func (f *Fake) AssertNotCalled(t testing.TB, op Op, key string) {
	t.Helper()
	if got := f.Count(op, key); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, key, got)
	}
}

// AssertTotal ensures the total call count for an op matches times.
func (f *Fake) AssertTotal(t testing.TB, op Op, times int) {
	t.Helper()
	if !f.waitFor(func() bool { return f.Total(op) == times }) {
		t.Fatalf("expected %s total=%d, got %d", op, times, f.Total(op))
	}
}

// AssertSize waits briefly for the store's size to reach n.
func (f *Fake) AssertSize(t testing.TB, n int) {
	t.Helper()
	if !f.waitFor(func() bool { return f.store.Size() == n }) {
		t.Fatalf("expected size=%d, got %d", n, f.store.Size())
	}
}

// AssertStored checks key is held by the store without counting a read.
func (f *Fake) AssertStored(t testing.TB, key string) {
	t.Helper()
	if !f.stored(key) {
		t.Fatalf("expected %q stored, keys=%v", key, f.store.Keys())
	}
}

// AssertNotStored waits briefly for key to leave the store, without counting a read.
func (f *Fake) AssertNotStored(t testing.TB, key string) {
	t.Helper()
	if !f.waitFor(func() bool { return !f.stored(key) }) {
		t.Fatalf("expected %q not stored, keys=%v", key, f.store.Keys())
	}
}

// Count returns calls for op+key.
func (f *Fake) Count(op Op, key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		return 0
	}
	return f.counts[op][key]
}

// Total returns total calls for an op across keys.
func (f *Fake) Total(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

func (f *Fake) observe(op string, key string, _ bool, _ error, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[Op(op)] == nil {
		f.counts[Op(op)] = make(map[string]int)
	}
	f.counts[Op(op)][key]++
}

func (f *Fake) stored(key string) bool {
	for _, k := range f.store.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func (f *Fake) waitFor(cond func() bool) bool {
	deadline := time.Now().Add(settleTimeout)
	for {
		if cond() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}
