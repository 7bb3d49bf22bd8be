package preferences

import (
	"strconv"
	"time"

	"motionlab/internal/core/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	theme    *widget.Select
	debounce *widget.Entry
	box      *widget.Entry
	loading  *widget.Entry
	feedback *widget.Entry
	history  *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("MotionLab Settings")

	options := make([]string, 0, len(theme.All()))
	for _, selection := range theme.All() {
		options = append(options, selection.String())
	}

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		theme:    widget.NewSelect(options, nil),
		debounce: widget.NewEntry(),
		box:      widget.NewEntry(),
		loading:  widget.NewEntry(),
		feedback: widget.NewEntry(),
		history:  widget.NewEntry(),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Theme"), prefs.theme),
		container.NewHBox(widget.NewLabel("Theme notice shown for"), prefs.feedback, widget.NewLabel("ms")),
		widget.NewLabelWithStyle("Timing", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Preview debounce"), prefs.debounce, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Box animation"), prefs.box, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Loading duration"), prefs.loading, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Calculations kept"), prefs.history),
	)

	saveButton := widget.NewButton("Save", prefs.Save)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 360))
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved values.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.theme.SetSelected(settings.Theme.String())
	prefs.debounce.SetText(strconv.FormatInt(settings.PreviewDebounce.Milliseconds(), 10))
	prefs.box.SetText(strconv.FormatInt(settings.BoxAnimation.Milliseconds(), 10))
	prefs.loading.SetText(strconv.Itoa(int(settings.LoadingDuration.Seconds())))
	prefs.feedback.SetText(strconv.FormatInt(settings.FeedbackDisplay.Milliseconds(), 10))
	prefs.history.SetText(strconv.Itoa(settings.MaxCalculations))
}

// Save parses the entries, reports the result to onSave and hides the
// window. Entries that do not parse keep their previous value.
func (prefs *Window) Save() {
	settings := prefs.settings

	if selection, err := theme.Parse(prefs.theme.Selected); err == nil {
		settings.Theme = selection
	}
	if millis, ok := parseInt(prefs.debounce.Text, 0); ok {
		settings.PreviewDebounce = time.Duration(millis) * time.Millisecond
	}
	if millis, ok := parseInt(prefs.box.Text, 1); ok {
		settings.BoxAnimation = time.Duration(millis) * time.Millisecond
	}
	if seconds, ok := parseInt(prefs.loading.Text, 1); ok {
		settings.LoadingDuration = time.Duration(seconds) * time.Second
	}
	if millis, ok := parseInt(prefs.feedback.Text, 1); ok {
		settings.FeedbackDisplay = time.Duration(millis) * time.Millisecond
	}
	if count, ok := parseInt(prefs.history.Text, 1); ok {
		settings.MaxCalculations = count
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseInt(value string, floor int) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < floor {
		return 0, false
	}
	return parsed, true
}
