package playground

import (
	"image/color"
	"time"

	"motionlab/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Spinner simulates a loading process.
type Spinner struct {
	deps   Deps
	bar    *widget.ProgressBarInfinite
	halo   *canvas.Rectangle
	status *widget.Label
	active bool
}

// NewSpinner creates the loading indicator.
func NewSpinner(deps Deps) *Spinner {
	deps = deps.withDefaults()
	bar := widget.NewProgressBarInfinite()
	bar.Hide()
	halo := canvas.NewRectangle(color.Transparent)
	halo.CornerRadius = 8
	return &Spinner{
		deps:   deps,
		bar:    bar,
		halo:   halo,
		status: widget.NewLabel("Idle"),
	}
}

// CanvasObject returns the indicator with its trigger button.
func (spinner *Spinner) CanvasObject() fyne.CanvasObject {
	return container.NewVBox(
		container.NewStack(spinner.halo, spinner.bar),
		spinner.status,
		widget.NewButton("Start loading", spinner.StartLoading),
	)
}

// StartLoading shows the indicator and stops it after the loading duration.
func (spinner *Spinner) StartLoading() {
	spinner.deps.Manager.Start(SubjectSpinner, spinner.start, spinner.stop, spinner.deps.Config.Surfaces.Loading)
}

// Active reports whether the indicator is running.
func (spinner *Spinner) Active() bool {
	return spinner.active
}

// Status returns the status caption.
func (spinner *Spinner) Status() string {
	return spinner.status.Text
}

func (spinner *Spinner) start() {
	spinner.active = true
	spinner.bar.Show()
	spinner.bar.Start()
	spinner.deps.Engine.Play(string(SubjectSpinner), animation.KindPulse, 2*time.Second, true, spinner.render)
	spinner.status.SetText("Loading...")
}

func (spinner *Spinner) stop() {
	spinner.active = false
	spinner.bar.Stop()
	spinner.bar.Hide()
	spinner.deps.Engine.Stop(string(SubjectSpinner))
	spinner.status.SetText("Done")
}

func (spinner *Spinner) render(frame animation.Frame) {
	spinner.halo.FillColor = glowColor(frame.Glow)
	spinner.halo.Refresh()
}
