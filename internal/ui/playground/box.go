package playground

import (
	"image/color"
	"time"

	"motionlab/internal/ui/animation"
	"motionlab/internal/ui/palette"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const boxIdleText = "Click to animate!"

// Box is the animated tile that plays a random animation when clicked.
type Box struct {
	deps    Deps
	layout  *frameLayout
	holder  *fyne.Container
	tile    *canvas.Rectangle
	label   *widget.Label
	current animation.Kind
}

// NewBox creates the animated tile.
func NewBox(deps Deps) *Box {
	deps = deps.withDefaults()
	tile := canvas.NewRectangle(palette.AccentIndigo)
	tile.CornerRadius = 12
	tile.SetMinSize(fyne.NewSize(140, 80))
	label := widget.NewLabelWithStyle(boxIdleText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	layout := newFrameLayout()
	box := &Box{
		deps:   deps,
		layout: layout,
		tile:   tile,
		label:  label,
	}
	box.holder = container.New(layout, container.NewStack(tile, label))
	return box
}

// CanvasObject returns the tile with its trigger button.
func (box *Box) CanvasObject() fyne.CanvasObject {
	return container.NewVBox(box.holder, widget.NewButton("Animate box", box.Animate))
}

// Animate plays a random animation for the configured duration.
func (box *Box) Animate() {
	box.deps.Manager.Start(SubjectBox, box.apply, box.revert, box.deps.Config.Surfaces.BoxAnimation)
}

// Text returns the tile caption.
func (box *Box) Text() string {
	return box.label.Text
}

// Current returns the running animation, empty when idle.
func (box *Box) Current() animation.Kind {
	return box.current
}

func (box *Box) apply() {
	box.deps.Engine.Stop(string(SubjectBox))
	kind := animation.Pick(box.deps.Rand)
	box.current = kind
	box.deps.Engine.Play(string(SubjectBox), kind, cycleOf(kind), true, box.render)
	box.label.SetText(kind.Label())
}

func (box *Box) revert() {
	box.deps.Engine.Stop(string(SubjectBox))
	box.current = ""
	box.label.SetText(boxIdleText)
}

func (box *Box) render(frame animation.Frame) {
	box.layout.frame = frame
	box.tile.StrokeColor = glowColor(frame.Glow)
	box.tile.StrokeWidth = 6 * frame.Glow
	box.tile.Refresh()
	box.holder.Refresh()
}

func glowColor(glow float32) color.Color {
	if glow <= 0 {
		return color.Transparent
	}
	if glow > 1 {
		glow = 1
	}
	return color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: uint8(glow * 204)}
}

// cycleOf is the length of one repetition of a box animation.
func cycleOf(kind animation.Kind) time.Duration {
	switch kind {
	case animation.KindPulse:
		return 2 * time.Second
	default:
		return time.Second
	}
}
