package animation

// SlideDistance is how far the toast travels off its resting position.
const SlideDistance = 320

type stop struct {
	at    float32
	value float32
}

type track struct {
	rotation []stop
	offsetX  []stop
	offsetY  []stop
	scale    []stop
	glow     []stop
}

var keyframes = map[Kind]track{
	KindSpin:   {rotation: []stop{{0, 0}, {1, 360}}},
	KindBounce: {offsetY: []stop{{0, 0}, {0.5, -20}, {1, 0}}},
	KindPulse:  {scale: []stop{{0, 1}, {0.5, 1.05}, {1, 1}}, glow: []stop{{0, 0}, {0.5, 0.5}, {1, 0}}},
	KindScale:  {scale: []stop{{0, 1}, {0.5, 1.2}, {1, 1}}},

	KindWiggle:  {rotation: []stop{{0, 0}, {0.25, 5}, {0.75, -5}, {1, 0}}},
	KindShake:   {offsetX: []stop{{0, 0}, {0.25, -5}, {0.75, 5}, {1, 0}}},
	KindGlow:    {glow: []stop{{0, 0.25}, {0.5, 1}, {1, 0.25}}},
	KindDefault: {scale: []stop{{0, 1}, {0.5, 1.1}, {1, 1}}},

	KindSlideIn:  {offsetX: []stop{{0, SlideDistance}, {1, 0}}},
	KindSlideOut: {offsetX: []stop{{0, 0}, {1, SlideDistance}}},
}

// FrameAt evaluates kind at progress in [0, 1]. Unknown kinds use the
// default pulse.
func FrameAt(kind Kind, progress float32) Frame {
	spec, ok := keyframes[kind]
	if !ok {
		spec = keyframes[KindDefault]
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return Frame{
		Rotation: interpolate(spec.rotation, progress, 0),
		OffsetX:  interpolate(spec.offsetX, progress, 0),
		OffsetY:  interpolate(spec.offsetY, progress, 0),
		Scale:    interpolate(spec.scale, progress, 1),
		Glow:     interpolate(spec.glow, progress, 0),
	}
}

func interpolate(stops []stop, progress, rest float32) float32 {
	if len(stops) == 0 {
		return rest
	}
	if progress <= stops[0].at {
		return stops[0].value
	}
	for i := 1; i < len(stops); i++ {
		next := stops[i]
		if progress <= next.at {
			prev := stops[i-1]
			span := next.at - prev.at
			if span <= 0 {
				return next.value
			}
			return prev.value + (next.value-prev.value)*(progress-prev.at)/span
		}
	}
	return stops[len(stops)-1].value
}
