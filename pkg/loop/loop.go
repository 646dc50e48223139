// Package loop provides the single goroutine every UI mutation runs on.
//
// A Loop executes dispatched functions and timer callbacks one at a time, in
// order, on the goroutine that called Run. Core types are not safe for
// concurrent use; they are owned by exactly one loop. Manual is a
// deterministic Scheduler for tests.
package loop

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler posts work onto the owning goroutine.
type Scheduler interface {
	// Dispatch queues fn. It reports false when the task was discarded.
	Dispatch(fn func()) bool
	// AfterFunc runs fn on the loop after at least d.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the timer
	// was stopped before it fired.
	Stop() bool
}

// retryDelay is how long a timer callback waits for room in a full queue.
const retryDelay = time.Millisecond

// Loop is a single-goroutine task queue.
type Loop struct {
	tasks  chan func()
	done   chan struct{}
	closed atomic.Bool
	once   sync.Once
	logger *slog.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the task buffer size. The default is 256.
func WithQueueSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.tasks = make(chan func(), n)
		}
	}
}

// WithLogger sets the logger used for dropped tasks and recovered panics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// New creates a Loop. Call Run to start processing.
func New(opts ...Option) *Loop {
	l := &Loop{
		tasks:  make(chan func(), 256),
		done:   make(chan struct{}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run processes tasks until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case fn := <-l.tasks:
			l.execute(fn)
		case <-ctx.Done():
			l.Close()
			return
		case <-l.done:
			return
		}
	}
}

// execute runs one task with panic recovery.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("loop task panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Dispatch queues fn for the loop goroutine.
func (l *Loop) Dispatch(fn func()) bool {
	if l.enqueue(fn) {
		return true
	}
	if !l.closed.Load() {
		l.logger.Warn("loop queue full, discarding task")
	}
	return false
}

func (l *Loop) enqueue(fn func()) bool {
	if l.closed.Load() {
		return false
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	default:
		return false
	}
}

// post queues a timer callback. While the queue is full it retries after
// retryDelay until the callback is queued or the loop closes.
func (l *Loop) post(fn func()) {
	if l.enqueue(fn) || l.closed.Load() {
		return
	}
	time.AfterFunc(retryDelay, func() { l.post(fn) })
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Dispatch(func() {
		defer close(finished)
		fn()
	}) {
		return ErrClosed
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrClosed
	}
}

// AfterFunc runs fn on the loop after d. A zero delay posts fn directly to
// the queue. Timer callbacks are never discarded for a full queue.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	run := func() {
		if t.stopped.CompareAndSwap(false, true) {
			fn()
		}
	}
	if d <= 0 {
		l.post(run)
		return t
	}
	t.timer = time.AfterFunc(d, func() { l.post(run) })
	return t
}

// Close stops the loop. Queued tasks are discarded.
func (l *Loop) Close() {
	l.once.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} { return l.done }

type loopTimer struct {
	stopped atomic.Bool
	timer   *time.Timer
}

func (t *loopTimer) Stop() bool {
	if t.timer != nil {
		t.timer.Stop()
	}
	return t.stopped.CompareAndSwap(false, true)
}
