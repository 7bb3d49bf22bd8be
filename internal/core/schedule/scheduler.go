package schedule

import "time"

// Scheduler runs callbacks after a delay without blocking the caller.
type Scheduler interface {
	After(delay time.Duration, fn func()) Handle
}

// Handle cancels a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. It reports whether the
	// callback was still pending.
	Cancel() bool
}

// Dispatcher hands a fired callback to the event loop that owns UI state.
type Dispatcher func(func())

// Immediate runs callbacks on the calling goroutine.
func Immediate(fn func()) {
	fn()
}

// Clamp treats negative durations as zero.
func Clamp(delay time.Duration) time.Duration {
	if delay < 0 {
		return 0
	}
	return delay
}
