package playground

import (
	"image/color"

	"motionlab/internal/core/theme"
	"motionlab/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const toastTarget = "theme-feedback"

// Toast is the single theme-change notice pinned to the top-right corner.
type Toast struct {
	deps    Deps
	layout  *toastLayout
	overlay *fyne.Container
	box     *fyne.Container
	text    *canvas.Text
}

var _ theme.Feedback = (*Toast)(nil)

// NewToast creates a hidden toast.
func NewToast(deps Deps) *Toast {
	deps = deps.withDefaults()
	background := canvas.NewRectangle(color.NRGBA{A: 0xcc})
	background.CornerRadius = 5
	text := canvas.NewText("", color.White)
	box := container.NewStack(background, container.NewPadded(text))
	box.Hide()

	layout := &toastLayout{margin: 20}
	return &Toast{
		deps:    deps,
		layout:  layout,
		overlay: container.New(layout, box),
		box:     box,
		text:    text,
	}
}

// CanvasObject returns the overlay layer holding the toast.
func (toast *Toast) CanvasObject() fyne.CanvasObject {
	return toast.overlay
}

// Message returns the text on screen, empty when hidden.
func (toast *Toast) Message() string {
	if !toast.box.Visible() {
		return ""
	}
	return toast.text.Text
}

// Visible reports whether the toast is on screen.
func (toast *Toast) Visible() bool {
	return toast.box.Visible()
}

// ShowFeedback replaces the current notice and slides it in.
func (toast *Toast) ShowFeedback(message string) {
	toast.text.Text = message
	toast.text.Refresh()
	toast.box.Show()
	toast.slide(animation.KindSlideIn)
}

// DismissFeedback slides the notice out.
func (toast *Toast) DismissFeedback() {
	toast.slide(animation.KindSlideOut)
}

// RemoveFeedback hides the notice.
func (toast *Toast) RemoveFeedback() {
	toast.deps.Engine.Stop(toastTarget)
	toast.box.Hide()
	toast.layout.offsetX = 0
	toast.overlay.Refresh()
}

func (toast *Toast) slide(kind animation.Kind) {
	toast.deps.Engine.Play(toastTarget, kind, toast.deps.Config.Feedback.Exit, false, func(frame animation.Frame) {
		toast.layout.offsetX = frame.OffsetX
		toast.overlay.Refresh()
	})
}
