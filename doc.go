// Package cache provides an in-process key-value store with optional
// per-entry expiry.
//
// Entries put with a ttl are evicted by a timer when the ttl elapses, or
// earlier by a Get that finds them past their deadline. An optional callback
// runs once when an entry's ttl elapses:
//
//	s := cache.New()
//	_, err := s.Put("token", "abc", cache.WithTTL(time.Minute),
//		cache.OnExpire(func(key string, value any) {
//			log.Printf("%s expired", key)
//		}))
//	if err != nil {
//		// ttl <= 0 or a nil callback
//	}
//
// Default returns a shared store for applications that want one instance per
// process. Use New for isolated instances.
package cache
