package schedule_test

import (
	"testing"
	"time"

	"motionlab/internal/core/schedule"

	"github.com/stretchr/testify/assert"
)

func TestVirtual_RunsInDueOrder(t *testing.T) {
	clock := schedule.NewVirtual()
	var order []string

	clock.After(300*time.Millisecond, func() { order = append(order, "late") })
	clock.After(100*time.Millisecond, func() { order = append(order, "early") })
	clock.After(100*time.Millisecond, func() { order = append(order, "early-second") })

	clock.Advance(99 * time.Millisecond)
	assert.Empty(t, order)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"early", "early-second"}, order)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"early", "early-second", "late"}, order)
	assert.Equal(t, 1100*time.Millisecond, clock.Now())
}

func TestVirtual_CancelBeforeFire(t *testing.T) {
	clock := schedule.NewVirtual()
	fired := false

	handle := clock.After(50*time.Millisecond, func() { fired = true })
	assert.Equal(t, 1, clock.Len())
	assert.True(t, handle.Cancel())
	assert.False(t, handle.Cancel(), "second cancel is a no-op")
	assert.Equal(t, 0, clock.Len())

	clock.Advance(time.Second)
	assert.False(t, fired)
}

func TestVirtual_CancelAfterFireIsNoop(t *testing.T) {
	clock := schedule.NewVirtual()
	count := 0

	handle := clock.After(10*time.Millisecond, func() { count++ })
	clock.Advance(10 * time.Millisecond)

	assert.False(t, handle.Cancel())
	assert.Equal(t, 1, count)
}

func TestVirtual_ZeroDelayIsDeferred(t *testing.T) {
	clock := schedule.NewVirtual()
	fired := false

	clock.After(0, func() { fired = true })
	assert.False(t, fired, "zero delay never runs inside After")

	clock.RunPending()
	assert.True(t, fired)
	assert.Equal(t, time.Duration(0), clock.Now())
}

func TestVirtual_NegativeDelayTreatedAsZero(t *testing.T) {
	clock := schedule.NewVirtual()
	fired := false

	clock.After(-5*time.Second, func() { fired = true })
	clock.RunPending()

	assert.True(t, fired)
}

func TestVirtual_NestedSchedulingWithinAdvance(t *testing.T) {
	clock := schedule.NewVirtual()
	var at []time.Duration

	clock.After(100*time.Millisecond, func() {
		at = append(at, clock.Now())
		clock.After(50*time.Millisecond, func() {
			at = append(at, clock.Now())
		})
	})

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 150 * time.Millisecond}, at)
	assert.Equal(t, 200*time.Millisecond, clock.Now())
}
