package transition

import "time"

// Stage is one timed step of a sequence.
type Stage struct {
	Apply  Mutation
	Revert Mutation
	Delay  time.Duration
}

// Sequencer chains two timed transitions: the exit stage starts only once
// the enter stage's delay has elapsed.
type Sequencer struct {
	manager *Manager
	enterID Subject
	exitID  Subject
	enter   Stage
	exit    Stage
}

// NewSequencer creates a two-stage sequence for subject.
func NewSequencer(manager *Manager, subject Subject, enter, exit Stage) *Sequencer {
	return &Sequencer{
		manager: manager,
		enterID: subject + "/enter",
		exitID:  subject + "/exit",
		enter:   enter,
		exit:    exit,
	}
}

// Trigger starts the sequence from the enter stage. A pending enter reversal
// is superseded by the restart, and so is a pending exit stage, which keeps a
// single pending reversal for the whole sequence.
func (sequencer *Sequencer) Trigger() {
	sequencer.manager.cancel(sequencer.exitID)
	sequencer.manager.Start(sequencer.enterID, sequencer.enter.Apply, sequencer.advance, sequencer.enter.Delay)
}

// Active reports whether either stage is awaiting its reversal.
func (sequencer *Sequencer) Active() bool {
	return sequencer.manager.State(sequencer.enterID) == StateAppliedPendingRevert ||
		sequencer.manager.State(sequencer.exitID) == StateAppliedPendingRevert
}

func (sequencer *Sequencer) advance() {
	defer sequencer.manager.Start(sequencer.exitID, sequencer.exit.Apply, sequencer.exit.Revert, sequencer.exit.Delay)
	if sequencer.enter.Revert != nil {
		sequencer.enter.Revert()
	}
}
