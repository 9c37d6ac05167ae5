package cache

import "time"

// Observer receives events for store operations.
// It is called after each operation completes, outside the store lock.
//
// For "get" hit reports a cache hit, for "delete" it reports that the entry
// was removed, and for "expire" it reports that the timer removed the entry
// itself rather than finding it already evicted by a read.
type Observer interface {
	OnStoreOp(op string, key string, hit bool, err error, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(op string, key string, hit bool, err error, dur time.Duration)

// OnStoreOp implements Observer.
func (f ObserverFunc) OnStoreOp(op string, key string, hit bool, err error, dur time.Duration) {
	if f == nil {
		return
	}
	f(op, key, hit, err, dur)
}
