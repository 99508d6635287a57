package queue

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type fakeRunner struct {
	mu    sync.Mutex
	calls []string
	delay time.Duration
}

func (f *fakeRunner) Run(ctx context.Context, slug string) Summary {
	f.mu.Lock()
	f.calls = append(f.calls, slug)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
		}
	}
	return Summary{Downloaded: 1}
}

func (f *fakeRunner) calledWith() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnqueue_DedupPreservesPosition(t *testing.T) {
	runner := &fakeRunner{delay: 50 * time.Millisecond}
	q := New(runner, testLogger())
	q.Pause = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	_ = q.Enqueue(ctx, "a")
	_ = q.Enqueue(ctx, "b")
	_ = q.Enqueue(ctx, "a") // already queued, dedup

	pending := q.Pending()
	// "a" may already have been dequeued into the worker by the time we
	// check; what matters is that "a" never appears twice.
	count := 0
	for _, s := range pending {
		if s == "a" {
			count++
		}
	}
	if count > 1 {
		t.Errorf("Pending() = %v, 'a' enqueued more than once", pending)
	}
}

func TestQueue_ProcessesInEnqueueOrder(t *testing.T) {
	runner := &fakeRunner{}
	q := New(runner, testLogger())
	q.Pause = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	_ = q.Enqueue(ctx, "first")
	_ = q.Enqueue(ctx, "second")
	_ = q.Enqueue(ctx, "third")

	waitForCalls(t, runner, 3)

	got := runner.calledWith()
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call order = %v, want %v", got, want)
			break
		}
	}
}

func TestShutdown_EmptiesQueueAndStopsProcessing(t *testing.T) {
	runner := &fakeRunner{delay: 100 * time.Millisecond}
	q := New(runner, testLogger())
	q.Pause = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	_ = q.Enqueue(ctx, "running")
	time.Sleep(10 * time.Millisecond) // let the worker pick it up
	_ = q.Enqueue(ctx, "queued-but-never-run")

	q.Shutdown()
	time.Sleep(200 * time.Millisecond)

	if err := q.Enqueue(ctx, "after-shutdown"); err != nil {
		t.Fatalf("Enqueue after shutdown returned error: %v", err)
	}
	if len(q.Pending()) != 0 {
		t.Errorf("Pending() after shutdown = %v, want empty (shutdown rejects new work)", q.Pending())
	}

	got := runner.calledWith()
	for _, c := range got {
		if c == "queued-but-never-run" || c == "after-shutdown" {
			t.Errorf("runner unexpectedly ran %q after shutdown", c)
		}
	}
}

func waitForCalls(t *testing.T, r *fakeRunner, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(r.calledWith()) >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d calls, got %v", n, r.calledWith())
}
