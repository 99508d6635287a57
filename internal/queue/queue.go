// Package queue implements the process-global FIFO download queue
// (spec §4.6): dedup on enqueue, a single worker, and cooperative
// shutdown. Grounded on the teacher's own single-goroutine worker
// shape (fsfuse has no queue of its own, so this generalizes the
// "owned handle, not a module-level global" design note from spec §9
// into a struct the App constructs once and holds).
package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Runner executes one queued job. Implemented by internal/job.Runner
// in production; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, slug string) Summary
}

// Summary reports a completed job's counts, logged by the worker
// (spec §4.7's "no persistent status file is required").
type Summary struct {
	Downloaded int
	Skipped    int
	Failed     int
	Err        error
}

// Queue is a FIFO of channel slugs with dedup-on-enqueue and a single
// background worker.
type Queue struct {
	Runner Runner
	Logger *slog.Logger
	Pause  time.Duration // inter-job pause; defaults to 1s, overridable for tests

	mu          sync.Mutex
	pending     []string
	inFlight    bool
	shuttingDown bool
	wake        chan struct{}
	done        chan struct{}
}

// New constructs a Queue bound to runner.
func New(runner Runner, logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		Runner: runner,
		Logger: logger,
		Pause:  time.Second,
		wake:   make(chan struct{}, 1),
	}
}

// Enqueue adds slug to the tail of the queue unless it is already
// present (spec §4.6's "dedup on enqueue" — prior position preserved).
// Non-blocking: the worker goroutine does the actual work.
func (q *Queue) Enqueue(ctx context.Context, slug string) error {
	q.mu.Lock()
	alreadyQueued := false
	for _, s := range q.pending {
		if s == slug {
			alreadyQueued = true
			break
		}
	}
	shuttingDown := q.shuttingDown
	if !alreadyQueued && !shuttingDown {
		q.pending = append(q.pending, slug)
	}
	q.mu.Unlock()

	if !alreadyQueued && !shuttingDown {
		q.Logger.Info("queue: enqueued", "slug", slug)
		q.nudge()
	}
	return nil
}

func (q *Queue) nudge() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Run drives the worker loop until ctx is cancelled or Shutdown is
// called. Intended to run as its own goroutine, owned by App.
func (q *Queue) Run(ctx context.Context) {
	q.done = make(chan struct{})
	defer close(q.done)

	for {
		slug, ok := q.dequeue()
		if !ok {
			if q.isShuttingDown() {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-q.wake:
				continue
			}
		}

		jobID := uuid.NewString()
		q.Logger.Info("queue: starting job", "slug", slug, "job_id", jobID)
		summary := q.Runner.Run(ctx, slug)
		q.Logger.Info("queue: job finished", "slug", slug, "job_id", jobID,
			"downloaded", summary.Downloaded, "skipped", summary.Skipped, "failed", summary.Failed, "error", summary.Err)

		if q.isShuttingDown() {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(q.Pause):
		}
	}
}

func (q *Queue) dequeue() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.shuttingDown || len(q.pending) == 0 {
		return "", false
	}
	slug := q.pending[0]
	q.pending = q.pending[1:]
	return slug, true
}

func (q *Queue) isShuttingDown() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.shuttingDown
}

// Shutdown raises the shutting_down flag and empties the queue (spec
// §5's cancellation sequence). It does not itself stop an in-flight
// subprocess; App.StopDownloads pairs this with Supervisor.Stop.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	q.shuttingDown = true
	q.pending = nil
	q.mu.Unlock()
	q.nudge()
}

// Pending reports the current queue contents, for status reporting.
func (q *Queue) Pending() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, len(q.pending))
	copy(out, q.pending)
	return out
}
