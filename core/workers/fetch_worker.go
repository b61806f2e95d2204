// ABOUTME: Fetch worker pool runs viewer source fetches in the background
// ABOUTME: Bounds how many remote fetches run at once across all viewer sessions

package workers

import (
	"context"
	"sync"
	"time"

	"article-viewer-api/core/interfaces"
)

// FetchPool is a fixed set of goroutines draining a queue of fetch jobs.
// It implements interfaces.Dispatcher.
type FetchPool struct {
	jobQueue   chan func()
	maxWorkers int
	queueSize  int
	submitWait time.Duration
	logger     interfaces.Logger
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.RWMutex
	running    bool
}

// PoolConfig holds configuration for the fetch pool
type PoolConfig struct {
	MaxWorkers int
	QueueSize  int

	// SubmitWait is how long Dispatch blocks on a full queue before giving up
	SubmitWait time.Duration
}

// DefaultPoolConfig returns the default pool configuration
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxWorkers: 8,
		QueueSize:  64,
		SubmitWait: 5 * time.Second,
	}
}

// NewFetchPool creates a new fetch pool. Call Start before dispatching.
func NewFetchPool(config PoolConfig, logger interfaces.Logger) *FetchPool {
	ctx, cancel := context.WithCancel(context.Background())

	defaults := DefaultPoolConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.SubmitWait <= 0 {
		config.SubmitWait = defaults.SubmitWait
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &FetchPool{
		jobQueue:   make(chan func(), config.QueueSize),
		maxWorkers: config.MaxWorkers,
		queueSize:  config.QueueSize,
		submitWait: config.SubmitWait,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker goroutines
func (p *FetchPool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}
	if p.ctx.Err() != nil {
		return ErrPoolStopped
	}

	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}

	p.running = true
	return nil
}

// Stop stops the pool. Queued jobs that have not started are dropped.
func (p *FetchPool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return nil
	}

	p.cancel()
	p.wg.Wait()

	p.running = false
	return nil
}

// Dispatch queues a job. It fails when the pool is not running or the queue
// stays full for longer than the configured wait.
func (p *FetchPool) Dispatch(job func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running {
		return ErrWorkerNotRunning
	}

	timer := time.NewTimer(p.submitWait)
	defer timer.Stop()

	select {
	case p.jobQueue <- job:
		return nil
	case <-timer.C:
		p.logger.Warn("Fetch queue full, job rejected", map[string]interface{}{
			"queue_size": p.queueSize,
		})
		return ErrQueueFull
	}
}

// run is the main loop for each worker
func (p *FetchPool) run(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			p.process(id, job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *FetchPool) process(id int, job func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Fetch job panicked", map[string]interface{}{
				"worker": id,
				"panic":  r,
			})
		}
	}()
	job()
}

// GoDispatcher runs every job on its own goroutine. It never rejects a job.
type GoDispatcher struct{}

// Dispatch implements interfaces.Dispatcher
func (GoDispatcher) Dispatch(job func()) error {
	go job()
	return nil
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
	ErrPoolStopped      = &WorkerError{Message: "worker pool has been stopped"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
