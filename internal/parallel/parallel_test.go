package parallel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

func TestForEach_DisjointSlots(t *testing.T) {
	out := make([]int, 100)
	err := parallel.ForEach(quiet(), len(out), 4, func(_ context.Context, i int) error {
		out[i] = i * i
		return nil
	})
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestForEach_RespectsLimit(t *testing.T) {
	var active, peak int32
	err := parallel.ForEach(quiet(), 50, 3, func(_ context.Context, _ int) error {
		cur := atomic.AddInt32(&active, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
				break
			}
		}
		atomic.AddInt32(&active, -1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestForEach_ErrorWaitsForSiblings(t *testing.T) {
	boom := errors.New("boom")
	var done int32
	err := parallel.ForEach(quiet(), 8, 8, func(_ context.Context, i int) error {
		defer atomic.AddInt32(&done, 1)
		if i == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	// The join happened: every started task finished before ForEach returned.
	started := atomic.LoadInt32(&done)
	assert.GreaterOrEqual(t, started, int32(1))
	assert.LessOrEqual(t, started, int32(8))
}

func TestForEach_PanicBecomesError(t *testing.T) {
	err := parallel.ForEach(quiet(), 4, 2, func(_ context.Context, i int) error {
		if i == 1 {
			panic("out of scratch")
		}
		return nil
	})
	require.ErrorIs(t, err, parallel.ErrWorkerPanic)
	assert.Contains(t, err.Error(), "task 1")
	assert.Contains(t, err.Error(), "out of scratch")
}

func TestForEach_Trivial(t *testing.T) {
	called := false
	require.NoError(t, parallel.ForEach(quiet(), 0, 4, func(context.Context, int) error {
		called = true
		return nil
	}))
	assert.False(t, called)

	ctx, cancel := context.WithCancel(quiet())
	cancel()
	err := parallel.ForEach(ctx, 3, 1, func(context.Context, int) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 3, parallel.Workers(3))
	assert.GreaterOrEqual(t, parallel.Workers(0), 1)
}
