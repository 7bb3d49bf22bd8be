package theme_test

import (
	"errors"
	"testing"
	"time"

	"motionlab/internal/core/schedule"
	"motionlab/internal/core/theme"
	"motionlab/internal/core/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toast models a single feedback element.
type toast struct {
	visible  int
	message  string
	exiting  bool
	maxShown int
}

func (feedback *toast) ShowFeedback(message string) {
	if feedback.visible == 0 {
		feedback.visible = 1
	}
	feedback.message = message
	feedback.exiting = false
	if feedback.visible > feedback.maxShown {
		feedback.maxShown = feedback.visible
	}
}

func (feedback *toast) DismissFeedback() { feedback.exiting = true }

func (feedback *toast) RemoveFeedback() {
	feedback.visible = 0
	feedback.exiting = false
}

func TestParse(t *testing.T) {
	selection, err := theme.Parse(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, selection)

	_, err = theme.Parse("neon")
	assert.True(t, errors.Is(err, theme.ErrUnknownSelection))
}

func TestSelector_ReplacesSelection(t *testing.T) {
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	var applied []theme.Selection
	selector := theme.NewSelector(manager, theme.Light, func(s theme.Selection) { applied = append(applied, s) }, nil, theme.DefaultTiming())

	assert.Equal(t, theme.Light, selector.Current())
	selector.Set(theme.Colorful)
	assert.Equal(t, theme.Colorful, selector.Current())
	assert.Equal(t, []theme.Selection{theme.Colorful}, applied)
	assert.Equal(t, 0, manager.Pending())
}

func TestSelector_FeedbackLifecycle(t *testing.T) {
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	feedback := &toast{}
	selector := theme.NewSelector(manager, theme.Light, nil, feedback, theme.DefaultTiming())

	selector.Set(theme.Dark)
	assert.Equal(t, 1, feedback.visible)
	assert.Equal(t, "Theme changed to: dark", feedback.message)

	clock.Advance(2 * time.Second)
	assert.True(t, feedback.exiting)
	assert.Equal(t, 1, feedback.visible)

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, 0, feedback.visible)
	assert.Equal(t, 0, manager.Pending())
}

func TestSelector_RapidChangesKeepOneFeedback(t *testing.T) {
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	feedback := &toast{}
	selector := theme.NewSelector(manager, theme.Light, nil, feedback, theme.DefaultTiming())

	selector.Set(theme.Dark)
	clock.Advance(500 * time.Millisecond)
	selector.Set(theme.Colorful)

	assert.Equal(t, 1, manager.Pending(), "one feedback-removal timer pending")
	assert.Equal(t, "Theme changed to: colorful", feedback.message)

	clock.Advance(2100 * time.Millisecond)
	selector.Set(theme.Light)
	assert.Equal(t, 1, manager.Pending())
	assert.False(t, feedback.exiting)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 1, feedback.maxShown, "exactly one feedback element at any instant")
	assert.Equal(t, 0, feedback.visible)
	assert.Equal(t, theme.Light, selector.Current())
}
