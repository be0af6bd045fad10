package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// ErrPoolStopped is returned for jobs submitted after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

type task struct {
	ctx  context.Context
	job  Job
	done chan error // nil for fire-and-forget jobs
}

// Pool runs jobs on a fixed set of goroutines. A pool with one worker
// serializes every job, which is how the simulation is driven.
type Pool struct {
	workers  int
	jobQueue chan task
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan task, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case t := <-p.jobQueue:
			p.run(t)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(t task) {
	err := t.job.Process(t.ctx)
	if err != nil {
		logger.FromContext(t.ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
	if t.done != nil {
		t.done <- err
	}
}

// Enqueue adds a job without waiting for it. It reports false when the
// queue is full or the pool is stopped.
func (p *Pool) Enqueue(ctx context.Context, job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- task{ctx: context.WithoutCancel(ctx), job: job}:
		return true
	default:
		return false
	}
}

// Do runs a job on the pool and waits for its result
func (p *Pool) Do(ctx context.Context, job Job) error {
	done := make(chan error, 1)
	select {
	case p.jobQueue <- task{ctx: ctx, job: job, done: done}:
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop stops the workers and waits for them to finish the running job
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
