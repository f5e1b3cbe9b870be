package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"
)

type queued struct {
	job    Job
	handle *Handle
}

// ImportQueue runs write-stage jobs on a small worker pool. One worker is
// enough for correctness (writes within an entity type are serialized by the
// storage constraints anyway); more workers just overlap independent imports.
type ImportQueue struct {
	runner  Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan queued
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ImportQueue)

func WithWorkers(n int) Option {
	return func(q *ImportQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ImportQueue) {
		if n > 0 {
			q.ch = make(chan queued, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *ImportQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewImportQueue(runner Runner, logger *slog.Logger, opts ...Option) *ImportQueue {
	q := &ImportQueue{
		runner:  runner,
		logger:  logger,
		workers: 2,
		timeout: 2 * time.Minute,
		ch:      make(chan queued, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ImportQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("import worker started", "worker_id", workerID)

				for item := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					result, err := q.runner.RunImportJob(ctx, item.job)
					cancel()

					if err != nil {
						q.logger.Error("import job failed", "worker_id", workerID, "job_id", item.job.JobID, "error", err)
					} else {
						q.logger.Info("import job completed", "worker_id", workerID, "job_id", item.job.JobID,
							"components_created", result.ComponentsCreated, "duration_ms", result.DurationMS)
					}
					item.handle.complete(result, err)
				}
			}(i)
		}
	})
}

// Submit enqueues a job and returns its handle. It fails fast when the queue
// is shut down or full rather than blocking a request goroutine.
func (q *ImportQueue) Submit(ctx context.Context, job Job) (*Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Shutdown closes q.ch under this lock; the send must not race the
	// close. The select never blocks (default case), so holding the lock
	// across it is cheap.
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, errors.New("import queue is shut down")
	}

	h := newHandle(job.JobID)
	select {
	case q.ch <- queued{job: job, handle: h}:
		return h, nil
	default:
		return nil, errors.New("import queue is full")
	}
}

// Shutdown stops accepting jobs and waits for in-flight ones, bounded by ctx.
func (q *ImportQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("import queue shutdown timed out", "error", ctx.Err())
	}
}
