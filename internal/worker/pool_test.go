package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
	block    chan struct{}
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	if j.block != nil {
		select {
		case <-j.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(2, 10)
		pool.Start(context.Background())

		job := &testJob{executed: &executed}
		failing := &testJob{executed: &executed, err: errors.New("boom")}
		require.True(t, pool.Enqueue(job))
		require.True(t, pool.Enqueue(failing))

		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&executed) == 2
		}, time.Second, 5*time.Millisecond)

		pool.Stop()
		assert.False(t, pool.Enqueue(job))
	})
}

func TestPool_QueueFull(t *testing.T) {
	var executed int32
	block := make(chan struct{})
	pool := NewPool(1, 1)
	pool.Start(context.Background())
	defer pool.Stop()

	blocking := &testJob{executed: &executed, block: block}
	require.True(t, pool.Enqueue(blocking))

	// wait for the worker to take the blocking job so the queue is empty
	assert.Eventually(t, func() bool { return len(pool.jobQueue) == 0 }, time.Second, time.Millisecond)

	require.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))

	close(block)
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	pool.Start(context.Background())

	require.True(t, pool.Enqueue(&testJob{executed: &executed, block: make(chan struct{})}))
	assert.Eventually(t, func() bool { return len(pool.jobQueue) == 0 }, time.Second, time.Millisecond)

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return while a job was running")
	}
	assert.Zero(t, atomic.LoadInt32(&executed))
}
