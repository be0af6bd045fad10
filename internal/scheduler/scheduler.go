package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/worker"
)

// LogMsgTickSkipped is logged when the worker queue is still busy with an earlier tick
const LogMsgTickSkipped = "Scheduled job skipped, worker queue full"

type entry struct {
	interval time.Duration
	job      worker.Job
}

// Scheduler enqueues jobs on the worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	entries    []entry
	quit       chan struct{}
	wg         sync.WaitGroup
	started    bool
	mu         sync.Mutex
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. Non-positive
// intervals are ignored. Jobs registered after Start begin immediately.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{interval: interval, job: job}
	s.entries = append(s.entries, e)
	if s.started {
		s.run(context.Background(), e)
	}
}

// Start launches a ticker per registered job
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.run(ctx, e)
	}
}

func (s *Scheduler) run(ctx context.Context, e entry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// a tick is dropped rather than queued behind a slow day
				if !s.workerPool.Enqueue(ctx, e.job) {
					logger.FromContext(ctx).Warn(LogMsgTickSkipped, "interval", e.interval)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.mu.Lock()
	select {
	case <-s.quit:
	default:
		close(s.quit)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
