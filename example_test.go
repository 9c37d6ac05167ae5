package cache_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	cache "github.com/easybird/easy-memory-cache"
)

func ExampleStore_Put() {
	s := cache.New()

	value, _ := s.Put("user:42", "Ada")
	fmt.Println(value, s.Size())

	_, err := s.Put("user:42", "Grace", cache.WithTTL(0))
	fmt.Println(errors.Is(err, cache.ErrInvalidArgument))
	// Output:
	// Ada 1
	// true
}

func ExampleStore_Get() {
	s := cache.New()
	_, _ = s.Put("user:42", "Ada")

	value, ok := s.Get("user:42")
	fmt.Println(ok, value)
	_, ok = s.Get("user:7")
	fmt.Println(ok, s.Hits(), s.Misses())
	// Output:
	// true Ada
	// false 1 1
}

func ExampleStore_Delete() {
	s := cache.New()
	_, _ = s.Put("token", "abc", cache.WithTTL(time.Hour))

	fmt.Println(s.Delete("token"), s.Delete("token"), s.Size())
	// Output: true false 0
}

func ExampleOnExpire() {
	mock := clock.NewMock()
	s := cache.New(cache.WithClock(mock))
	done := make(chan struct{})

	_, _ = s.Put("session", "abc", cache.WithTTL(time.Minute), cache.OnExpire(func(key string, value any) {
		fmt.Println("expired", key, value)
		close(done)
	}))

	mock.Add(time.Minute)
	<-done
	fmt.Println(s.Size())
	// Output:
	// expired session abc
	// 0
}

func ExampleGetAs() {
	s := cache.New()
	_, _ = s.Put("count", 3)

	n, ok := cache.GetAs[int](s, "count")
	fmt.Println(ok, n)
	// Output: true 3
}
