package playground

import (
	"image/color"

	"motionlab/internal/core/transition"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Modal is a dialog that fades in and out over the playground. Opening and
// closing share one subject, so each supersedes the other's pending step.
type Modal struct {
	deps     Deps
	popup    *widget.PopUp
	veil     *canvas.Rectangle
	lock     func(bool)
	opener   *transition.Sequencer
	closer   *transition.Sequencer
	visible  bool
	opacity  float32
	scrollOK bool
}

// NewModal creates the modal on target. lock disables scrolling of the page
// behind the modal while it is shown; it may be nil.
func NewModal(deps Deps, target fyne.Canvas, lock func(bool)) *Modal {
	deps = deps.withDefaults()
	modal := &Modal{
		deps:     deps,
		veil:     canvas.NewRectangle(color.Transparent),
		lock:     lock,
		scrollOK: true,
	}

	title := widget.NewLabelWithStyle("Dynamic modal", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	body := widget.NewLabel("Shown first, then faded in on the next tick.\nScrolling is locked while it is open.")
	content := container.NewPadded(container.NewVBox(title, body, widget.NewButton("Close", modal.Close)))
	modal.popup = widget.NewModalPopUp(container.NewStack(modal.veil, content), target)

	surfaces := deps.Config.Surfaces
	modal.opener = transition.NewSequencer(deps.Manager, SubjectModal,
		transition.Stage{Apply: modal.show, Delay: surfaces.ModalEnter},
		transition.Stage{Apply: func() { modal.setOpacity(1) }},
	)
	modal.closer = transition.NewSequencer(deps.Manager, SubjectModal,
		transition.Stage{Apply: func() { modal.setOpacity(0) }, Delay: surfaces.ModalExit},
		transition.Stage{Apply: modal.hide},
	)
	return modal
}

// Open shows the modal and fades it in.
func (modal *Modal) Open() {
	modal.opener.Trigger()
}

// Close fades the modal out and hides it.
func (modal *Modal) Close() {
	modal.closer.Trigger()
}

// Visible reports whether the modal is displayed.
func (modal *Modal) Visible() bool {
	return modal.visible
}

// Opacity returns the current modal opacity.
func (modal *Modal) Opacity() float32 {
	return modal.opacity
}

// ScrollEnabled reports whether the page behind the modal may scroll.
func (modal *Modal) ScrollEnabled() bool {
	return modal.scrollOK
}

func (modal *Modal) show() {
	modal.visible = true
	modal.setScroll(false)
	modal.popup.Show()
}

func (modal *Modal) hide() {
	modal.visible = false
	modal.popup.Hide()
	modal.setScroll(true)
}

func (modal *Modal) setScroll(enabled bool) {
	modal.scrollOK = enabled
	if modal.lock != nil {
		modal.lock(!enabled)
	}
}

func (modal *Modal) setOpacity(opacity float32) {
	modal.opacity = opacity
	modal.veil.FillColor = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: uint8(opacity * 0xe0)}
	modal.veil.Refresh()
}
