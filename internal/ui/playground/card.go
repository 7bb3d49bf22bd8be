package playground

import (
	"motionlab/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Card flips between a front and a back face.
type Card struct {
	deps    Deps
	card    *widget.Card
	front   fyne.CanvasObject
	back    fyne.CanvasObject
	layout  *frameLayout
	holder  *fyne.Container
	flipped bool
}

// NewCard creates the flip card.
func NewCard(deps Deps) *Card {
	deps = deps.withDefaults()
	front := widget.NewLabelWithStyle("Front side\nClick to flip", fyne.TextAlignCenter, fyne.TextStyle{})
	back := widget.NewLabelWithStyle("Back side\nClick again to flip back", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	card := widget.NewCard("Flip card", "front", front)
	layout := newFrameLayout()
	return &Card{
		deps:   deps,
		card:   card,
		front:  front,
		back:   back,
		layout: layout,
		holder: container.New(layout, card),
	}
}

// CanvasObject returns the card with its trigger button.
func (card *Card) CanvasObject() fyne.CanvasObject {
	return container.NewVBox(card.holder, widget.NewButton("Flip card", card.Flip))
}

// Flip toggles the visible face and briefly enlarges the card.
func (card *Card) Flip() {
	card.deps.Manager.Start(SubjectCard, card.apply, card.settle, card.deps.Config.Surfaces.CardSettle)
}

// Flipped reports whether the back face is showing.
func (card *Card) Flipped() bool {
	return card.flipped
}

// Scale returns the current scale of the card.
func (card *Card) Scale() float32 {
	return card.layout.frame.Scale
}

func (card *Card) apply() {
	card.flipped = !card.flipped
	if card.flipped {
		card.card.SetSubTitle("back")
		card.card.SetContent(card.back)
	} else {
		card.card.SetSubTitle("front")
		card.card.SetContent(card.front)
	}
	card.render(animation.Frame{Scale: 1.05})
}

func (card *Card) settle() {
	card.render(animation.Rest())
}

func (card *Card) render(frame animation.Frame) {
	card.layout.frame = frame
	card.holder.Refresh()
}
