package playground

import (
	"log/slog"
	"math/rand"
	"time"

	"motionlab/internal/core/model"
	"motionlab/internal/core/schedule"
	"motionlab/internal/core/transition"
	"motionlab/internal/logging"
	"motionlab/internal/ui/animation"
)

// Deps are the collaborators shared by every surface.
type Deps struct {
	Manager   *transition.Manager
	Scheduler schedule.Scheduler
	Engine    *animation.Engine
	Config    model.PlaygroundConfig
	Rand      *rand.Rand
	Logger    *slog.Logger
}

func (deps Deps) withDefaults() Deps {
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Engine == nil {
		deps.Engine = animation.New(nil)
	}
	return deps
}

// Subjects of the timed transitions driven by the playground.
const (
	SubjectBox        transition.Subject = "box"
	SubjectCard       transition.Subject = "card"
	SubjectSpinner    transition.Subject = "spinner"
	SubjectModal      transition.Subject = "modal"
	SubjectCalcResult transition.Subject = "calc-result"
)
