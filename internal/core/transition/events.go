package transition

import "time"

// Subject identifies the UI entity a transition mutates.
type Subject string

// Mutation is an opaque state change supplied by the UI layer.
type Mutation func()

// State is the per-subject transition state.
type State string

const (
	StateIdle                 State = "idle"
	StateAppliedPendingRevert State = "applied_pending_revert"
)

// EventType defines the type of transition event.
type EventType string

const (
	EventApplied    EventType = "applied"
	EventReverted   EventType = "reverted"
	EventSuperseded EventType = "superseded"
	EventFailed     EventType = "failed"
)

// Event reports a transition step to observers.
type Event struct {
	Type    EventType
	Subject Subject
	Delay   time.Duration
	Message string
}
