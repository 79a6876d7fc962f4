package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotBot_Go/internal/testing/leaktest"
)

func TestRevealWorker_RunsAfterDelay(t *testing.T) {
	w := NewRevealWorker()
	done := make(chan time.Time, 1)
	start := time.Now()

	w.Schedule(20*time.Millisecond, func(ctx context.Context) {
		done <- time.Now()
	})
	assert.Equal(t, 1, w.Pending())

	select {
	case ran := <-done:
		assert.GreaterOrEqual(t, ran.Sub(start), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("reveal never ran")
	}
	assert.Eventually(t, func() bool { return w.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestRevealWorker_ZeroDelay(t *testing.T) {
	w := NewRevealWorker()
	var ran atomic.Int32

	for range 100 {
		w.Schedule(0, func(ctx context.Context) { ran.Add(1) })
	}

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, int32(100), ran.Load())
}

func TestRevealWorker_ShutdownFlushesPending(t *testing.T) {
	w := NewRevealWorker()
	var mu sync.Mutex
	var order []int

	for i := range 3 {
		w.Schedule(time.Hour, func(ctx context.Context) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	require.Equal(t, 3, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))

	assert.Zero(t, w.Pending())
	assert.ElementsMatch(t, []int{0, 1, 2}, order)
}

func TestRevealWorker_ScheduleAfterShutdownRunsImmediately(t *testing.T) {
	w := NewRevealWorker()
	require.NoError(t, w.Shutdown(context.Background()))

	var ran atomic.Bool
	w.Schedule(time.Hour, func(ctx context.Context) { ran.Store(true) })

	assert.True(t, ran.Load())
	assert.Zero(t, w.Pending())
}

func TestRevealWorker_ShutdownTimeout(t *testing.T) {
	w := NewRevealWorker()
	release := make(chan struct{})
	defer close(release)

	w.Schedule(time.Hour, func(ctx context.Context) { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := w.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRevealWorker_ShutdownLeavesNoGoroutines(t *testing.T) {
	leaktest.Verify(t)

	w := NewRevealWorker()
	for range 5 {
		w.Schedule(time.Hour, func(ctx context.Context) {})
	}
	require.NoError(t, w.Shutdown(context.Background()))
}
