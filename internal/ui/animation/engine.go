package animation

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// Animator is a running animation.
type Animator interface {
	Start()
	Stop()
}

// Factory builds an animator that calls tick with progress in [0, 1].
type Factory func(duration time.Duration, repeat bool, tick func(float32)) Animator

// FyneFactory builds animations on the fyne animation runner.
func FyneFactory(duration time.Duration, repeat bool, tick func(float32)) Animator {
	anim := fyne.NewAnimation(duration, tick)
	anim.Curve = fyne.AnimationEaseInOut
	if repeat {
		anim.RepeatCount = fyne.AnimationRepeatForever
	}
	return anim
}

// Engine runs at most one animation per target element.
type Engine struct {
	mu           sync.Mutex
	newAnimation Factory
	running      map[string]*run
}

type run struct {
	name     string
	animator Animator
	render   func(Frame)
}

// New creates an animation engine. A nil factory uses FyneFactory.
func New(factory Factory) *Engine {
	if factory == nil {
		factory = FyneFactory
	}
	return &Engine{
		newAnimation: factory,
		running:      make(map[string]*run),
	}
}

// Play starts kind on target, stopping whatever target was running. It
// returns the unique name of the run.
func (engine *Engine) Play(target string, kind Kind, cycle time.Duration, repeat bool, render func(Frame)) string {
	name := string(kind) + "_" + uuid.NewString()
	animator := engine.newAnimation(cycle, repeat, func(progress float32) {
		render(FrameAt(kind, progress))
	})

	engine.mu.Lock()
	previous := engine.running[target]
	engine.running[target] = &run{name: name, animator: animator, render: render}
	engine.mu.Unlock()

	if previous != nil {
		previous.animator.Stop()
	}
	animator.Start()
	return name
}

// Stop halts the animation on target and renders the rest frame. It reports
// whether anything was running.
func (engine *Engine) Stop(target string) bool {
	engine.mu.Lock()
	current, ok := engine.running[target]
	delete(engine.running, target)
	engine.mu.Unlock()

	if !ok {
		return false
	}
	current.animator.Stop()
	current.render(Rest())
	return true
}

// Running returns the name of the run active on target.
func (engine *Engine) Running(target string) (string, bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	current, ok := engine.running[target]
	if !ok {
		return "", false
	}
	return current.name, true
}

// StopAll halts every running animation.
func (engine *Engine) StopAll() {
	engine.mu.Lock()
	targets := make([]string, 0, len(engine.running))
	for target := range engine.running {
		targets = append(targets, target)
	}
	engine.mu.Unlock()

	for _, target := range targets {
		engine.Stop(target)
	}
}
