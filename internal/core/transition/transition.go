package transition

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"motionlab/internal/core/schedule"
	"motionlab/internal/logging"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(logger *slog.Logger) Option {
	return func(manager *Manager) {
		if logger != nil {
			manager.logger = logger
		}
	}
}

// Manager runs timed state transitions and keeps at most one pending
// reversal per subject.
type Manager struct {
	mu        sync.Mutex
	scheduler schedule.Scheduler
	logger    *slog.Logger
	pending   map[Subject]*reversal
	events    []chan Event
	closed    bool
}

type reversal struct {
	subject Subject
	revert  Mutation
	delay   time.Duration
	handle  schedule.Handle
}

// NewManager creates a Manager that schedules reversals on scheduler.
func NewManager(scheduler schedule.Scheduler, opts ...Option) *Manager {
	manager := &Manager{
		scheduler: scheduler,
		logger:    logging.NewNop(),
		pending:   make(map[Subject]*reversal),
	}
	for _, opt := range opts {
		opt(manager)
	}
	return manager
}

// Subscribe registers a new observer channel. Events are dropped when the
// channel is full.
func (manager *Manager) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if manager.closed {
		close(ch)
		return ch
	}
	manager.events = append(manager.events, ch)
	return ch
}

// Start applies a state change now and schedules revert after delay. A
// pending reversal for the same subject is cancelled first and its revert
// never runs. Negative delays are treated as zero.
func (manager *Manager) Start(subject Subject, apply, revert Mutation, delay time.Duration) {
	delay = schedule.Clamp(delay)
	entry := &reversal{subject: subject, revert: revert, delay: delay}

	manager.mu.Lock()
	if manager.closed {
		manager.mu.Unlock()
		return
	}
	if manager.supersedeLocked(subject) {
		manager.emitLocked(Event{Type: EventSuperseded, Subject: subject, Delay: delay})
	}
	manager.pending[subject] = entry
	manager.mu.Unlock()

	manager.run(subject, "apply", apply)

	manager.mu.Lock()
	defer manager.mu.Unlock()
	// apply may have started another transition on the same subject.
	if manager.pending[subject] != entry {
		return
	}
	entry.handle = manager.scheduler.After(delay, func() {
		manager.fire(entry)
	})
	manager.emitLocked(Event{Type: EventApplied, Subject: subject, Delay: delay})
	manager.logger.Debug("transition applied", "subject", subject, "delay", delay)
}

// State returns the current state of subject.
func (manager *Manager) State(subject Subject) State {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if _, ok := manager.pending[subject]; ok {
		return StateAppliedPendingRevert
	}
	return StateIdle
}

// Pending returns the number of subjects awaiting reversal.
func (manager *Manager) Pending() int {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return len(manager.pending)
}

// Close cancels every pending reversal and closes observer channels.
func (manager *Manager) Close() {
	manager.mu.Lock()
	if manager.closed {
		manager.mu.Unlock()
		return
	}
	manager.closed = true
	for subject := range manager.pending {
		manager.supersedeLocked(subject)
	}
	events := manager.events
	manager.events = nil
	manager.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// cancel drops the pending reversal of subject without running it.
func (manager *Manager) cancel(subject Subject) bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if !manager.supersedeLocked(subject) {
		return false
	}
	manager.emitLocked(Event{Type: EventSuperseded, Subject: subject})
	return true
}

func (manager *Manager) supersedeLocked(subject Subject) bool {
	entry, ok := manager.pending[subject]
	if !ok {
		return false
	}
	if entry.handle != nil {
		entry.handle.Cancel()
	}
	delete(manager.pending, subject)
	return true
}

func (manager *Manager) fire(entry *reversal) {
	manager.mu.Lock()
	if manager.pending[entry.subject] != entry {
		manager.mu.Unlock()
		return
	}
	delete(manager.pending, entry.subject)
	manager.mu.Unlock()

	if manager.run(entry.subject, "revert", entry.revert) {
		manager.emit(Event{Type: EventReverted, Subject: entry.subject, Delay: entry.delay})
		manager.logger.Debug("transition reverted", "subject", entry.subject)
	}
}

// run executes a mutation and reports whether it completed. Panics are
// recovered so a failed mutation only aborts its own step.
func (manager *Manager) run(subject Subject, step string, mutation Mutation) (ok bool) {
	if mutation == nil {
		return true
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			err := fmt.Errorf("%s %s: panic: %v", subject, step, recovered)
			manager.logger.Warn("transition mutation failed", "subject", subject, "step", step, "error", err)
			manager.emit(Event{Type: EventFailed, Subject: subject, Message: err.Error()})
			ok = false
		}
	}()
	mutation()
	return true
}

func (manager *Manager) emit(event Event) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.emitLocked(event)
}

func (manager *Manager) emitLocked(event Event) {
	for _, ch := range manager.events {
		select {
		case ch <- event:
		default:
		}
	}
}
