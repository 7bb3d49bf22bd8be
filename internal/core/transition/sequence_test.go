package transition_test

import (
	"testing"
	"time"

	"motionlab/internal/core/schedule"
	"motionlab/internal/core/transition"

	"github.com/stretchr/testify/assert"
)

func modalClose(manager *transition.Manager, log *journal) *transition.Sequencer {
	return transition.NewSequencer(manager, "modal",
		transition.Stage{Apply: log.record("opacity-0"), Delay: 300 * time.Millisecond},
		transition.Stage{Apply: log.record("hide-and-unlock"), Revert: log.record("settled"), Delay: 0},
	)
}

func TestSequencer_ExitWaitsForEnterDelay(t *testing.T) {
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	log := &journal{clock: clock}
	sequence := modalClose(manager, log)

	sequence.Trigger()
	assert.Equal(t, []string{"opacity-0"}, log.entries)
	assert.True(t, sequence.Active())

	clock.Advance(299 * time.Millisecond)
	assert.Equal(t, []string{"opacity-0"}, log.entries)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"opacity-0", "hide-and-unlock", "settled"}, log.entries)
	assert.Equal(t, 300*time.Millisecond, log.times[1])
	assert.False(t, sequence.Active())
}

func TestSequencer_RetriggerSupersedesEnterStage(t *testing.T) {
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	log := &journal{clock: clock}
	sequence := modalClose(manager, log)

	sequence.Trigger()
	clock.Advance(200 * time.Millisecond)
	sequence.Trigger()
	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"opacity-0", "opacity-0"}, log.entries, "first enter window was superseded")

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"opacity-0", "opacity-0", "hide-and-unlock", "settled"}, log.entries)
	assert.Equal(t, 500*time.Millisecond, log.times[2])
}

func TestSequencer_RetriggerDuringExitStage(t *testing.T) {
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	log := &journal{clock: clock}
	sequence := transition.NewSequencer(manager, "feedback",
		transition.Stage{Apply: log.record("slide-in"), Delay: 2 * time.Second},
		transition.Stage{Apply: log.record("slide-out"), Revert: log.record("remove"), Delay: 300 * time.Millisecond},
	)

	sequence.Trigger()
	clock.Advance(2100 * time.Millisecond)
	assert.Equal(t, []string{"slide-in", "slide-out"}, log.entries)
	assert.Equal(t, 1, manager.Pending())

	sequence.Trigger()
	assert.Equal(t, 1, manager.Pending(), "only one reversal of the sequence is pending")

	clock.Advance(2 * time.Second)
	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"slide-in", "slide-out", "slide-in", "slide-out", "remove"}, log.entries)
	assert.Equal(t, 4400*time.Millisecond, log.times[4])
}

func TestSequencer_DifferentSubjectsDoNotInterfere(t *testing.T) {
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	log := &journal{clock: clock}
	first := transition.NewSequencer(manager, "a",
		transition.Stage{Delay: 100 * time.Millisecond},
		transition.Stage{Apply: log.record("a-exit"), Delay: 0},
	)
	second := transition.NewSequencer(manager, "b",
		transition.Stage{Delay: 100 * time.Millisecond},
		transition.Stage{Apply: log.record("b-exit"), Delay: 0},
	)

	first.Trigger()
	clock.Advance(50 * time.Millisecond)
	second.Trigger()
	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a-exit"}, log.entries)

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a-exit", "b-exit"}, log.entries)
}
