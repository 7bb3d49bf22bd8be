// Package debounce collapses bursts of calls into a single delayed call that
// carries the arguments of the last call in the burst.
package debounce

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"motionlab/internal/core/schedule"
	"motionlab/internal/logging"
)

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report recovered action panics.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// Debouncer wraps an action so that only the last trigger of a burst runs it.
type Debouncer[T any] struct {
	mu        sync.Mutex
	scheduler schedule.Scheduler
	wait      time.Duration
	action    func(T)
	logger    *slog.Logger
	pending   schedule.Handle
	token     uint64
}

// New creates a debouncer. A negative wait is treated as zero.
func New[T any](scheduler schedule.Scheduler, wait time.Duration, action func(T), opts ...Option) *Debouncer[T] {
	config := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&config)
	}
	return &Debouncer[T]{
		scheduler: scheduler,
		wait:      schedule.Clamp(wait),
		action:    action,
		logger:    config.logger,
	}
}

// Func returns the trigger of a new debouncer as a plain function value.
func Func[T any](scheduler schedule.Scheduler, wait time.Duration, action func(T), opts ...Option) func(T) {
	return New(scheduler, wait, action, opts...).Trigger
}

// Trigger replaces any pending invocation with one carrying args that fires
// after the wait. It never runs the action itself.
func (debouncer *Debouncer[T]) Trigger(args T) {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	if debouncer.pending != nil {
		debouncer.pending.Cancel()
	}
	debouncer.token++
	token := debouncer.token
	debouncer.pending = debouncer.scheduler.After(debouncer.wait, func() {
		debouncer.fire(token, args)
	})
}

// Pending reports whether an invocation is scheduled.
func (debouncer *Debouncer[T]) Pending() bool {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()
	return debouncer.pending != nil
}

// Wait returns the effective wait duration.
func (debouncer *Debouncer[T]) Wait() time.Duration {
	return debouncer.wait
}

func (debouncer *Debouncer[T]) fire(token uint64, args T) {
	debouncer.mu.Lock()
	if token != debouncer.token {
		debouncer.mu.Unlock()
		return
	}
	debouncer.pending = nil
	debouncer.mu.Unlock()

	defer func() {
		if recovered := recover(); recovered != nil {
			debouncer.logger.Warn("debounced action failed", "error", fmt.Errorf("panic: %v", recovered))
		}
	}()
	debouncer.action(args)
}
