// Package schedule provides a cancellable repeating task owned by the
// component that starts it.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Task runs a function on a fixed interval between Start and Stop.
type Task struct {
	interval  time.Duration
	immediate bool
	fn        func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Task.
type Option func(*Task)

// RunImmediately makes Start invoke the function once before the first tick.
func RunImmediately() Option {
	return func(t *Task) {
		t.immediate = true
	}
}

// New creates a stopped task. interval must be positive.
func New(interval time.Duration, fn func(ctx context.Context), opts ...Option) *Task {
	if interval <= 0 {
		panic("schedule: interval must be positive")
	}
	t := &Task{interval: interval, fn: fn}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start launches the task. It is a no-op if the task is already running.
// The task stops when ctx is cancelled or Stop is called.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		if t.immediate {
			t.fn(ctx)
		}

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.fn(ctx)
			}
		}
	}()
}

// Stop cancels the task and waits for an in-flight run to return.
// Stopping a task that is not running is safe.
func (t *Task) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	t.wg.Wait()
}

// Running reports whether the task has been started and not stopped.
func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}
