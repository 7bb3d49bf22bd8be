package playground

import (
	"motionlab/internal/ui/animation"

	"fyne.io/fyne/v2"
)

// frameLayout centres its objects and applies the current animation frame.
type frameLayout struct {
	frame animation.Frame
}

func newFrameLayout() *frameLayout {
	return &frameLayout{frame: animation.Rest()}
}

// swayPerDegree converts rotation into horizontal offset.
const swayPerDegree = float32(0.4)

func (layout *frameLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	scale := layout.frame.Scale
	if scale <= 0 {
		scale = 1
	}
	offsetX := layout.frame.OffsetX + sway(layout.frame.Rotation)
	for _, object := range objects {
		base := object.MinSize()
		width := base.Width * scale
		height := base.Height * scale
		if width > size.Width {
			width = size.Width
		}
		if height > size.Height {
			height = size.Height
		}
		x := (size.Width-width)/2 + offsetX
		y := (size.Height-height)/2 + layout.frame.OffsetY
		object.Move(fyne.NewPos(x, y))
		object.Resize(fyne.NewSize(width, height))
	}
}

func (layout *frameLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, object := range objects {
		objectSize := object.MinSize()
		if objectSize.Width > width {
			width = objectSize.Width
		}
		if objectSize.Height > height {
			height = objectSize.Height
		}
	}
	// Leave headroom for scale and bounce frames.
	return fyne.NewSize(width*1.25+20, height*1.25+40)
}

// sway maps a rotation onto a back-and-forth offset so a full spin reads as
// one left-right swing.
func sway(rotation float32) float32 {
	for rotation > 180 {
		rotation -= 360
	}
	for rotation < -180 {
		rotation += 360
	}
	if rotation > 90 {
		rotation = 180 - rotation
	}
	if rotation < -90 {
		rotation = -180 - rotation
	}
	return rotation * swayPerDegree
}

// toastLayout pins a single object to the top-right corner.
type toastLayout struct {
	margin  float32
	offsetX float32
}

func (layout *toastLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, object := range objects {
		objectSize := object.MinSize()
		x := size.Width - layout.margin - objectSize.Width + layout.offsetX
		if x < 0 {
			x = 0
		}
		object.Move(fyne.NewPos(x, layout.margin))
		object.Resize(objectSize)
	}
}

func (layout *toastLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}
