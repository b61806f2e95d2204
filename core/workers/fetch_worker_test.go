package workers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetchPool_Defaults(t *testing.T) {
	pool := NewFetchPool(PoolConfig{}, nil)

	assert.Equal(t, DefaultPoolConfig().MaxWorkers, pool.maxWorkers)
	assert.Equal(t, DefaultPoolConfig().QueueSize, pool.queueSize)
	assert.NotNil(t, pool.logger)
}

func TestFetchPool_DispatchBeforeStart(t *testing.T) {
	pool := NewFetchPool(DefaultPoolConfig(), nil)

	err := pool.Dispatch(func() {})

	assert.Equal(t, ErrWorkerNotRunning, err)
}

func TestFetchPool_RunsJobs(t *testing.T) {
	pool := NewFetchPool(PoolConfig{MaxWorkers: 3, QueueSize: 10}, nil)
	require.NoError(t, pool.Start())
	defer pool.Stop()

	var wg sync.WaitGroup
	var count int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		require.NoError(t, pool.Dispatch(func() {
			defer wg.Done()
			atomic.AddInt32(&count, 1)
		}))
	}
	wg.Wait()

	assert.Equal(t, int32(20), atomic.LoadInt32(&count))
}

func TestFetchPool_BoundsConcurrency(t *testing.T) {
	pool := NewFetchPool(PoolConfig{MaxWorkers: 2, QueueSize: 10}, nil)
	require.NoError(t, pool.Start())
	defer pool.Stop()

	var wg sync.WaitGroup
	var current, peak int32
	for i := 0; i < 6; i++ {
		wg.Add(1)
		require.NoError(t, pool.Dispatch(func() {
			defer wg.Done()
			n := atomic.AddInt32(&current, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&current, -1)
		}))
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestFetchPool_QueueFull(t *testing.T) {
	pool := NewFetchPool(PoolConfig{MaxWorkers: 1, QueueSize: 1, SubmitWait: 20 * time.Millisecond}, nil)
	require.NoError(t, pool.Start())

	block := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, pool.Dispatch(func() {
		close(started)
		<-block
	}))
	<-started
	require.NoError(t, pool.Dispatch(func() {}))

	err := pool.Dispatch(func() {})

	assert.Equal(t, ErrQueueFull, err)
	close(block)
	pool.Stop()
}

func TestFetchPool_RecoversFromPanics(t *testing.T) {
	pool := NewFetchPool(PoolConfig{MaxWorkers: 1, QueueSize: 2}, nil)
	require.NoError(t, pool.Start())
	defer pool.Stop()

	done := make(chan struct{})
	require.NoError(t, pool.Dispatch(func() { panic("boom") }))
	require.NoError(t, pool.Dispatch(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive a panicking job")
	}
}

func TestFetchPool_StopThenStart(t *testing.T) {
	pool := NewFetchPool(DefaultPoolConfig(), nil)
	require.NoError(t, pool.Start())
	require.NoError(t, pool.Start())
	require.NoError(t, pool.Stop())
	require.NoError(t, pool.Stop())

	assert.Equal(t, ErrPoolStopped, pool.Start())
	assert.Equal(t, ErrWorkerNotRunning, pool.Dispatch(func() {}))
}

func TestGoDispatcher(t *testing.T) {
	done := make(chan struct{})

	err := GoDispatcher{}.Dispatch(func() { close(done) })

	require.NoError(t, err)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}
