package threadcount

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upTo(n int, keep func(int) bool) map[int]struct{} {
	r := make(map[int]struct{})
	for i := 1; i <= n; i++ {
		if keep(i) {
			r[i] = struct{}{}
		}
	}
	return r
}

func all(int) bool { return true }

func TestCountAll(t *testing.T) {
	for _, limit := range []int{100, 200} {
		c := NewCounter()
		require.NoError(t, New(3, limit).Count(context.Background(), c))
		assert.Equal(t, upTo(limit, all), c.Numbers())
	}
}

func TestCountThreads(t *testing.T) {
	for _, workers := range []int{3, 5} {
		c := NewCounter()
		require.NoError(t, New(workers, 100).Count(context.Background(), c))
		assert.Equal(t, workers, c.Threads())
	}
}

func TestCountPerThread(t *testing.T) {
	c := NewCounter()
	require.NoError(t, New(3, 100).Count(context.Background(), c))
	assert.Equal(t, upTo(100, func(n int) bool { return n%3 == 1 }), c.ThreadNumbers("Thread-1"))
	assert.Equal(t, upTo(100, func(n int) bool { return n%3 == 2 }), c.ThreadNumbers("Thread-2"))
	assert.Equal(t, upTo(100, func(n int) bool { return n%3 == 0 }), c.ThreadNumbers(Name(3)))
	assert.Empty(t, c.ThreadNumbers("Thread-4"))
}

func TestCountCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewCounter()
	err := New(4, 1000).Count(ctx, c)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.Numbers())
}

func TestNewInvalid(t *testing.T) {
	assert.Panics(t, func() { New(0, 10) })
}
