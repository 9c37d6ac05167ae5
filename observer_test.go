package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type observedOp struct {
	op  string
	key string
	hit bool
	err error
}

type observerSpy struct {
	mu  sync.Mutex
	ops []observedOp
}

func (o *observerSpy) OnStoreOp(op string, key string, hit bool, err error, dur time.Duration) {
	_ = dur
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, observedOp{op: op, key: key, hit: hit, err: err})
}

func (o *observerSpy) snapshot() []observedOp {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]observedOp(nil), o.ops...)
}

func TestObserverSeesOperations(t *testing.T) {
	obs := &observerSpy{}
	s, mock := newMockStore(t, WithObserver(obs))

	_, err := s.Put("k", "v")
	require.NoError(t, err)
	s.Get("k")
	s.Get("missing")
	s.Delete("k")
	_, err = s.Put("bad", "v", WithTTL(0))
	require.Error(t, err)
	s.Clear()

	_, err = s.Put("ttl", "v", WithTTL(time.Millisecond))
	require.NoError(t, err)
	mock.Add(time.Millisecond)
	require.Eventually(t, func() bool { return len(obs.snapshot()) == 8 }, time.Second, time.Millisecond)

	ops := obs.snapshot()
	require.Equal(t, observedOp{op: "put", key: "k"}, ops[0])
	require.Equal(t, observedOp{op: "get", key: "k", hit: true}, ops[1])
	require.Equal(t, observedOp{op: "get", key: "missing"}, ops[2])
	require.Equal(t, observedOp{op: "delete", key: "k", hit: true}, ops[3])
	require.Equal(t, "put", ops[4].op)
	require.True(t, errors.Is(ops[4].err, ErrInvalidTTL))
	require.Equal(t, observedOp{op: "clear"}, ops[5])
	require.Equal(t, observedOp{op: "put", key: "ttl"}, ops[6])
	require.Equal(t, observedOp{op: "expire", key: "ttl", hit: true}, ops[7])
}

func TestObserverFuncNilIsNoop(t *testing.T) {
	var f ObserverFunc
	f.OnStoreOp("get", "k", false, nil, 0)
}
