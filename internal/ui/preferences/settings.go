package preferences

import (
	"time"

	"motionlab/internal/core/model"
	"motionlab/internal/core/theme"
)

// Settings defines editable user preferences.
type Settings struct {
	Theme           theme.Selection
	PreviewDebounce time.Duration
	BoxAnimation    time.Duration
	LoadingDuration time.Duration
	FeedbackDisplay time.Duration
	MaxCalculations int
}

// DefaultSettings returns default settings for MotionLab.
func DefaultSettings() Settings {
	defaults := model.DefaultPlaygroundConfig()
	return Settings{
		Theme:           theme.Light,
		PreviewDebounce: defaults.PreviewDebounce,
		BoxAnimation:    defaults.Surfaces.BoxAnimation,
		LoadingDuration: defaults.Surfaces.Loading,
		FeedbackDisplay: defaults.Feedback.Display,
		MaxCalculations: defaults.MaxCalculations,
	}
}

// PlaygroundConfig converts settings to the playground timings.
func (settings Settings) PlaygroundConfig() model.PlaygroundConfig {
	config := model.DefaultPlaygroundConfig()
	config.PreviewDebounce = settings.PreviewDebounce
	config.Surfaces.BoxAnimation = settings.BoxAnimation
	config.Surfaces.Loading = settings.LoadingDuration
	config.Feedback.Display = settings.FeedbackDisplay
	if settings.MaxCalculations > 0 {
		config.MaxCalculations = settings.MaxCalculations
	}
	return config
}
