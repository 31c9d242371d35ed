package scheduler

import (
	"sync"
	"time"

	"github.com/atreus-labs/wardenbot/internal/worker"
)

// Scheduler enqueues jobs to the worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The ticker goroutine
// runs until Stop; an enqueue into a full pool queue blocks this schedule's
// goroutine only, not the other schedules.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. In-flight jobs already in the pool queue
// run to completion under the pool's own lifecycle.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
