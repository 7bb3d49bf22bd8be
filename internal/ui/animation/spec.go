package animation

import (
	"math/rand"
	"strings"
)

// Kind names an animation curve.
type Kind string

// Box animations picked at random when the box is clicked.
const (
	KindSpin   Kind = "spin"
	KindBounce Kind = "bounce"
	KindPulse  Kind = "pulse"
	KindScale  Kind = "scale"
)

// Dynamic animations attached to any element by name.
const (
	KindWiggle Kind = "wiggle"
	KindShake  Kind = "shake"
	KindGlow   Kind = "glow"
	// KindDefault is used for unknown dynamic names.
	KindDefault Kind = "default"
)

// Entrance and exit slides of the feedback toast.
const (
	KindSlideIn  Kind = "slide_in"
	KindSlideOut Kind = "slide_out"
)

// DynamicKinds returns the named dynamic animations.
func DynamicKinds() []Kind {
	return []Kind{KindWiggle, KindShake, KindGlow}
}

// BoxKinds returns the box animations.
func BoxKinds() []Kind {
	return []Kind{KindSpin, KindBounce, KindPulse, KindScale}
}

// Pick returns a random box animation.
func Pick(rng *rand.Rand) Kind {
	kinds := BoxKinds()
	return kinds[rng.Intn(len(kinds))]
}

// ParseDynamic maps a dynamic animation name to its kind.
func ParseDynamic(name string) Kind {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(name))); kind {
	case KindWiggle, KindShake, KindGlow:
		return kind
	default:
		return KindDefault
	}
}

// Label is the text shown while the animation runs.
func (kind Kind) Label() string {
	return "Animating: " + string(kind)
}

// Frame is the visual offset of an element at one point of an animation.
type Frame struct {
	// Rotation in degrees. The toolkit cannot rotate widgets, so surfaces
	// render it as a horizontal sway.
	Rotation float32
	OffsetX  float32
	OffsetY  float32
	Scale    float32
	// Glow is the shadow intensity in [0, 1].
	Glow float32
}

// Rest is the frame of an element that is not animating.
func Rest() Frame {
	return Frame{Scale: 1}
}
