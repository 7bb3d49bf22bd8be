package playground

import (
	"sort"
	"sync"
	"time"

	"motionlab/internal/core/transition"
	"motionlab/internal/ui/animation"
	"motionlab/internal/ui/palette"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const dynamicPrefix = "dynamic:"

// Dynamic plays named animations on registered elements.
type Dynamic struct {
	deps     Deps
	mu       sync.Mutex
	elements map[string]func(animation.Frame)
	names    map[string]string
}

// NewDynamic creates an empty element registry.
func NewDynamic(deps Deps) *Dynamic {
	return &Dynamic{
		deps:     deps.withDefaults(),
		elements: make(map[string]func(animation.Frame)),
		names:    make(map[string]string),
	}
}

// Register makes an element available under id. render receives every frame.
func (dynamic *Dynamic) Register(id string, render func(animation.Frame)) {
	dynamic.mu.Lock()
	defer dynamic.mu.Unlock()
	dynamic.elements[id] = render
}

// Unregister removes an element. It receives no further frames.
func (dynamic *Dynamic) Unregister(id string) {
	dynamic.mu.Lock()
	defer dynamic.mu.Unlock()
	delete(dynamic.elements, id)
}

// Elements returns the registered ids in order.
func (dynamic *Dynamic) Elements() []string {
	dynamic.mu.Lock()
	defer dynamic.mu.Unlock()
	ids := make([]string, 0, len(dynamic.elements))
	for id := range dynamic.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AddDynamicAnimation runs the named animation on element id for duration,
// then stops it. Unknown names play the default animation, a non-positive
// duration uses the configured default, and a missing element does nothing.
func (dynamic *Dynamic) AddDynamicAnimation(id, name string, duration time.Duration) {
	if _, ok := dynamic.lookup(id); !ok {
		dynamic.deps.Logger.Debug("dynamic animation skipped", "element", id)
		return
	}
	if duration <= 0 {
		duration = dynamic.deps.Config.Surfaces.DynamicDefault
	}
	kind := animation.ParseDynamic(name)
	target := dynamicPrefix + id
	dynamic.deps.Manager.Start(transition.Subject(target),
		func() { dynamic.play(id, target, kind, duration) },
		func() { dynamic.stop(target) },
		duration,
	)
}

// Running returns the unique name of the animation running on id.
func (dynamic *Dynamic) Running(id string) (string, bool) {
	return dynamic.deps.Engine.Running(dynamicPrefix + id)
}

func (dynamic *Dynamic) lookup(id string) (func(animation.Frame), bool) {
	dynamic.mu.Lock()
	defer dynamic.mu.Unlock()
	render, ok := dynamic.elements[id]
	return render, ok
}

func (dynamic *Dynamic) play(id, target string, kind animation.Kind, duration time.Duration) {
	if _, ok := dynamic.lookup(id); !ok {
		return
	}
	name := dynamic.deps.Engine.Play(target, kind, duration, false, func(frame animation.Frame) {
		dynamic.render(id, frame)
	})
	dynamic.deps.Logger.Debug("dynamic animation started", "element", id, "animation", name)
}

// stop always releases the run; the rest frame only reaches elements that
// are still registered.
func (dynamic *Dynamic) stop(target string) {
	dynamic.deps.Engine.Stop(target)
}

func (dynamic *Dynamic) render(id string, frame animation.Frame) {
	if render, ok := dynamic.lookup(id); ok {
		render(frame)
	}
}

// DynamicPanel shows the registered demo tiles with a picker per animation.
type DynamicPanel struct {
	dynamic *Dynamic
	content fyne.CanvasObject
}

// NewDynamicPanel registers demo tiles on dynamic and lays them out.
func NewDynamicPanel(dynamic *Dynamic, tiles ...string) *DynamicPanel {
	row := container.NewGridWithColumns(len(tiles) + 1)
	for _, id := range tiles {
		tile := canvas.NewRectangle(palette.AccentPink)
		tile.CornerRadius = 8
		tile.SetMinSize(fyne.NewSize(60, 60))
		layout := newFrameLayout()
		holder := container.New(layout, container.NewStack(tile, widget.NewLabelWithStyle(id, fyne.TextAlignCenter, fyne.TextStyle{})))
		dynamic.Register(id, func(frame animation.Frame) {
			if frame.Scale <= 0 {
				frame.Scale = 1
			}
			layout.frame = frame
			tile.StrokeColor = glowColor(frame.Glow)
			tile.StrokeWidth = 6 * frame.Glow
			tile.Refresh()
			holder.Refresh()
		})
		row.Add(holder)
	}

	names := make([]string, 0, len(animation.DynamicKinds()))
	for _, kind := range animation.DynamicKinds() {
		names = append(names, string(kind))
	}
	picker := widget.NewSelect(names, nil)
	picker.SetSelected(names[0])
	run := widget.NewButton("Animate all", func() {
		for _, id := range dynamic.Elements() {
			dynamic.AddDynamicAnimation(id, picker.Selected, 0)
		}
	})
	row.Add(container.NewVBox(picker, run))
	return &DynamicPanel{dynamic: dynamic, content: row}
}

// CanvasObject returns the panel.
func (panel *DynamicPanel) CanvasObject() fyne.CanvasObject {
	return panel.content
}
