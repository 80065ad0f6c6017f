package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	processor "github.com/scanfolio/cv-scanner/internal/pipeline"
)

// Job is the smallest useful unit. Extend as needed later (profile, trace, retry, etc).
type Job struct {
	FileID      uuid.UUID
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// ProcessorQueue fans jobs out to a fixed pool of workers, each running
// the full OCR + structuring pipeline for one file.
type ProcessorQueue struct {
	proc    *processor.Processor
	logger  *slog.Logger
	workers int
	size    int
	timeout time.Duration

	once sync.Once
	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(proc *processor.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		size:    256,
		timeout: 2 * time.Minute,
	}
	for _, o := range opts {
		o(q)
	}
	q.jobs = make(chan Job, q.size)
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go q.worker(i)
		}
	})
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		jobID, err := q.proc.ProcessFile(ctx, job.FileID)
		cancel()
		if err != nil {
			q.logger.Error("queue.process.failed", "worker", id, "file_id", job.FileID, "job_id", jobID, "err", err)
			continue
		}
		q.logger.Info("queue.process.ok", "worker", id, "file_id", job.FileID, "job_id", jobID,
			"wait_ms", time.Since(job.SubmittedAt).Milliseconds())
	}
}

// ErrQueueClosed is returned by Enqueue once Shutdown has started.
var ErrQueueClosed = errors.New("queue is shut down")

// Enqueue submits a job, blocking on a full queue until ctx expires.
// The mutex serializes against Shutdown so a racing close of the jobs
// channel cannot turn the send into a panic.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now().UTC()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case q.jobs <- job:
		return nil
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, or until
// ctx expires. Safe to call more than once.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out with jobs in flight")
	}
}
