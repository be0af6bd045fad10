package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool_Do(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	var executed int32
	require.NoError(t, pool.Do(context.Background(), &testJob{executed: &executed}))
	require.NoError(t, pool.Do(context.Background(), &testJob{executed: &executed}))

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPool_DoReturnsJobError(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	boom := errors.New("boom")
	err := pool.Do(context.Background(), JobFunc(func(ctx context.Context) error { return boom }))

	assert.ErrorIs(t, err, boom)
}

func TestPool_SingleWorkerSerializes(t *testing.T) {
	pool := NewPool(1, 16)
	pool.Start()
	defer pool.Stop()

	var running, maxRunning int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Do(context.Background(), JobFunc(func(ctx context.Context) error {
				n := atomic.AddInt32(&running, 1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			}))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

func TestPool_Enqueue(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()

	var executed int32
	assert.True(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
	assert.True(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 2 }, time.Second, 5*time.Millisecond)
	pool.Stop()
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1) // not started, nothing drains the queue

	var executed int32
	assert.True(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
}

func TestPool_Stopped(t *testing.T) {
	pool := NewPool(1, 0)
	pool.Start()
	pool.Stop()
	pool.Stop()

	var executed int32
	assert.False(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
	assert.ErrorIs(t, pool.Do(context.Background(), &testJob{executed: &executed}), ErrPoolStopped)
}

func TestDayJob(t *testing.T) {
	calls := 0
	job := NewDayJob(func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, job.Process(context.Background()))

	failing := NewDayJob(func(ctx context.Context) error { return errors.New("no world") })
	assert.Error(t, failing.Process(context.Background()))
	assert.Equal(t, 1, calls)
}
