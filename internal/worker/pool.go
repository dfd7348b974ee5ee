package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  max(workers, 1),
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs run with a context derived from ctx that is
// cancelled when the pool stops, so the request-scoped logger carries over.
func (p *Pool) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go func() {
		<-p.quit
		cancel()
	}()

	for range p.workers {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(ctx, job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(ctx context.Context, job Job) {
	log := logger.FromContext(ctx).With("job", job.Name())
	start := time.Now()

	if err := job.Process(ctx); err != nil {
		metrics.JobRuns.WithLabelValues(job.Name(), metrics.OutcomeFailed).Inc()
		log.Error(LogMsgWorkerJobFailed, "error", err)
		return
	}
	metrics.JobRuns.WithLabelValues(job.Name(), metrics.OutcomeSuccess).Inc()
	log.Debug(LogMsgWorkerJobCompleted, "duration_ms", time.Since(start).Milliseconds())
}

// Enqueue adds a job to the queue without blocking. It reports false when
// the queue is full or the pool has stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		metrics.JobRuns.WithLabelValues(job.Name(), metrics.OutcomeDropped).Inc()
		logger.Warn(LogMsgWorkerQueueFull, "job", job.Name())
		return false
	}
}

// Stop stops the workers and waits for running jobs to return. Queued jobs
// that have not started are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
