package preferences

import (
	"testing"
	"time"

	"motionlab/internal/core/theme"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_SaveParsesFields(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) { saved = append(saved, settings) })

	prefs.theme.SetSelected("colorful")
	prefs.debounce.SetText("0")
	prefs.box.SetText("1500")
	prefs.loading.SetText("5")
	prefs.feedback.SetText("abc")
	prefs.history.SetText("-3")
	prefs.Save()

	require.Len(t, saved, 1)
	got := saved[0]
	assert.Equal(t, theme.Colorful, got.Theme)
	assert.Zero(t, got.PreviewDebounce)
	assert.Equal(t, 1500*time.Millisecond, got.BoxAnimation)
	assert.Equal(t, 5*time.Second, got.LoadingDuration)
	assert.Equal(t, DefaultSettings().FeedbackDisplay, got.FeedbackDisplay, "invalid input keeps the previous value")
	assert.Equal(t, DefaultSettings().MaxCalculations, got.MaxCalculations)
	assert.Equal(t, got, prefs.Settings())
}

func TestSettings_PlaygroundConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.BoxAnimation = time.Second
	settings.MaxCalculations = 0

	config := settings.PlaygroundConfig()
	assert.Equal(t, time.Second, config.Surfaces.BoxAnimation)
	assert.Equal(t, 10, config.MaxCalculations)
	assert.Equal(t, 300*time.Millisecond, config.Feedback.Exit)
}
