package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"motionlab/internal/core/transition"
)

// ErrUnknownSelection indicates a theme name outside the fixed set.
var ErrUnknownSelection = errors.New("unknown theme")

// Selection is one of the fixed themes.
type Selection string

const (
	Light    Selection = "light"
	Dark     Selection = "dark"
	Colorful Selection = "colorful"
)

// All returns every selection in menu order.
func All() []Selection {
	return []Selection{Light, Dark, Colorful}
}

// Parse converts a theme name to a Selection.
func Parse(value string) (Selection, error) {
	selection := Selection(strings.ToLower(strings.TrimSpace(value)))
	switch selection {
	case Light, Dark, Colorful:
		return selection, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSelection, value)
	}
}

func (selection Selection) String() string {
	return string(selection)
}

// Feedback is the UI surface showing a short-lived theme notice.
type Feedback interface {
	// ShowFeedback displays message, replacing any notice on screen.
	ShowFeedback(message string)
	// DismissFeedback starts the exit animation.
	DismissFeedback()
	// RemoveFeedback takes the notice off screen.
	RemoveFeedback()
}

// Timing holds the feedback durations.
type Timing struct {
	Display time.Duration
	Exit    time.Duration
}

// DefaultTiming shows the notice for two seconds and slides it out in 300ms.
func DefaultTiming() Timing {
	return Timing{Display: 2 * time.Second, Exit: 300 * time.Millisecond}
}

// Selector owns the active selection.
type Selector struct {
	mu       sync.RWMutex
	current  Selection
	apply    func(Selection)
	feedback Feedback
	message  string
	sequence *transition.Sequencer
}

// NewSelector creates a selector starting at initial. apply is invoked with
// every new selection; feedback may be nil.
func NewSelector(manager *transition.Manager, initial Selection, apply func(Selection), feedback Feedback, timing Timing) *Selector {
	selector := &Selector{
		current:  initial,
		apply:    apply,
		feedback: feedback,
	}
	if feedback != nil {
		selector.sequence = transition.NewSequencer(manager, "theme-feedback",
			transition.Stage{Apply: selector.show, Delay: timing.Display},
			transition.Stage{Apply: feedback.DismissFeedback, Revert: feedback.RemoveFeedback, Delay: timing.Exit},
		)
	}
	return selector
}

// Current returns the active selection.
func (selector *Selector) Current() Selection {
	selector.mu.RLock()
	defer selector.mu.RUnlock()
	return selector.current
}

// Set replaces the active selection and shows the change notice.
func (selector *Selector) Set(selection Selection) {
	selector.mu.Lock()
	selector.current = selection
	selector.message = "Theme changed to: " + selection.String()
	selector.mu.Unlock()

	if selector.apply != nil {
		selector.apply(selection)
	}
	if selector.sequence != nil {
		selector.sequence.Trigger()
	}
}

func (selector *Selector) show() {
	selector.mu.RLock()
	message := selector.message
	selector.mu.RUnlock()
	selector.feedback.ShowFeedback(message)
}
