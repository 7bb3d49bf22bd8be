package schedule

import (
	"sync"
	"time"
)

// Timer schedules callbacks on the wall clock.
type Timer struct {
	dispatch Dispatcher
}

// NewTimer creates a wall-clock scheduler. Fired callbacks are passed to
// dispatch; a nil dispatcher runs them on the timer goroutine.
func NewTimer(dispatch Dispatcher) *Timer {
	if dispatch == nil {
		dispatch = Immediate
	}
	return &Timer{dispatch: dispatch}
}

// After schedules fn to run once delay has elapsed.
func (scheduler *Timer) After(delay time.Duration, fn func()) Handle {
	handle := &timerHandle{}
	handle.mu.Lock()
	defer handle.mu.Unlock()
	handle.timer = time.AfterFunc(Clamp(delay), func() {
		scheduler.dispatch(func() {
			if handle.claim() {
				fn()
			}
		})
	})
	return handle
}

type timerHandle struct {
	mu    sync.Mutex
	timer *time.Timer
	done  bool
}

// claim marks the handle as fired. The check runs on the dispatch side so a
// callback queued on the event loop still honours a later Cancel.
func (handle *timerHandle) claim() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.done {
		return false
	}
	handle.done = true
	return true
}

func (handle *timerHandle) Cancel() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.done {
		return false
	}
	handle.done = true
	handle.timer.Stop()
	return true
}
