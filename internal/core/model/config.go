package model

import "time"

// SurfaceTiming defines how long each animated surface stays in its applied
// state before reverting.
type SurfaceTiming struct {
	BoxAnimation   time.Duration
	CardSettle     time.Duration
	Loading        time.Duration
	ModalEnter     time.Duration
	ModalExit      time.Duration
	ResultPulse    time.Duration
	DynamicDefault time.Duration
}

// FeedbackTiming defines the theme-change notice durations.
type FeedbackTiming struct {
	Display time.Duration
	Exit    time.Duration
}

// PlaygroundConfig contains runtime settings for the playground surfaces.
type PlaygroundConfig struct {
	Surfaces SurfaceTiming
	Feedback FeedbackTiming

	// PreviewDebounce is the quiet period before the calculator preview
	// recomputes while typing.
	PreviewDebounce time.Duration
	// MaxCalculations caps the calculator history list.
	MaxCalculations int
}

// DefaultPlaygroundConfig returns the stock timings.
func DefaultPlaygroundConfig() PlaygroundConfig {
	return PlaygroundConfig{
		Surfaces: SurfaceTiming{
			BoxAnimation:   2 * time.Second,
			CardSettle:     300 * time.Millisecond,
			Loading:        3 * time.Second,
			ModalEnter:     10 * time.Millisecond,
			ModalExit:      300 * time.Millisecond,
			ResultPulse:    200 * time.Millisecond,
			DynamicDefault: time.Second,
		},
		Feedback: FeedbackTiming{
			Display: 2 * time.Second,
			Exit:    300 * time.Millisecond,
		},
		PreviewDebounce: 300 * time.Millisecond,
		MaxCalculations: 10,
	}
}
