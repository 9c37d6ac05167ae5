package cachefake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cache "github.com/easybird/easy-memory-cache"
)

func TestFakeRecordsOperations(t *testing.T) {
	f := New()
	s := f.Store()

	_, err := s.Put("user:1", "Ada")
	require.NoError(t, err)
	s.Get("user:1")
	s.Get("user:1")
	s.Delete("user:1")

	f.AssertCalled(t, OpPut, "user:1", 1)
	f.AssertCalled(t, OpGet, "user:1", 2)
	f.AssertCalled(t, OpDelete, "user:1", 1)
	f.AssertNotCalled(t, OpExpire, "user:1")
	f.AssertTotal(t, OpGet, 2)

	f.Reset()
	f.AssertTotal(t, OpGet, 0)
}

func TestFakeAdvanceExpiresEntries(t *testing.T) {
	f := New()
	s := f.Store()
	expired := make(chan string, 1)

	_, err := s.Put("session", "abc", cache.WithTTL(time.Minute), cache.OnExpire(func(key string, _ any) {
		expired <- key
	}))
	require.NoError(t, err)

	f.Advance(59 * time.Second)
	f.AssertStored(t, "session")
	f.AssertSize(t, 1)

	f.Advance(time.Second)
	select {
	case key := <-expired:
		require.Equal(t, "session", key)
	case <-time.After(time.Second):
		t.Fatalf("expected expiry callback")
	}
	f.AssertNotStored(t, "session")
	f.AssertSize(t, 0)
	f.AssertCalled(t, OpExpire, "session", 1)
	require.Equal(t, 0, s.Misses())
}

func TestFakeClockIsMock(t *testing.T) {
	f := New()
	start := f.Clock().Now()
	f.Advance(time.Hour)
	require.Equal(t, time.Hour, f.Clock().Now().Sub(start))
}
