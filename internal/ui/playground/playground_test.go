package playground

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"motionlab/internal/core/calc"
	"motionlab/internal/core/model"
	"motionlab/internal/core/schedule"
	"motionlab/internal/core/theme"
	"motionlab/internal/core/transition"
	"motionlab/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnimator struct{}

func (stubAnimator) Start() {}
func (stubAnimator) Stop()  {}

func stubFactory(time.Duration, bool, func(float32)) animation.Animator {
	return stubAnimator{}
}

func newTestDeps(t *testing.T) (Deps, *schedule.Virtual) {
	t.Helper()
	test.NewTempApp(t)
	clock := schedule.NewVirtual()
	manager := transition.NewManager(clock)
	t.Cleanup(manager.Close)
	return Deps{
		Manager:   manager,
		Scheduler: clock,
		Engine:    animation.New(stubFactory),
		Config:    model.DefaultPlaygroundConfig(),
		Rand:      rand.New(rand.NewSource(7)),
	}, clock
}

func TestBox_AnimatesForTwoSeconds(t *testing.T) {
	deps, clock := newTestDeps(t)
	box := NewBox(deps)

	box.Animate()
	require.NotEmpty(t, box.Current())
	assert.Equal(t, box.Current().Label(), box.Text())
	_, running := deps.Engine.Running(string(SubjectBox))
	assert.True(t, running)

	clock.Advance(1999 * time.Millisecond)
	assert.NotEmpty(t, box.Current())

	clock.Advance(time.Millisecond)
	assert.Empty(t, box.Current())
	assert.Equal(t, boxIdleText, box.Text())
	_, running = deps.Engine.Running(string(SubjectBox))
	assert.False(t, running)
}

func TestBox_ReclickExtendsAnimation(t *testing.T) {
	deps, clock := newTestDeps(t)
	box := NewBox(deps)

	box.Animate()
	clock.Advance(time.Second)
	box.Animate()
	clock.Advance(1500 * time.Millisecond)
	assert.NotEmpty(t, box.Current(), "first timer must not revert the second animation")

	clock.Advance(500 * time.Millisecond)
	assert.Empty(t, box.Current())
	assert.Zero(t, deps.Manager.Pending())
}

func TestCard_FlipSettles(t *testing.T) {
	deps, clock := newTestDeps(t)
	card := NewCard(deps)

	card.Flip()
	assert.True(t, card.Flipped())
	assert.InDelta(t, 1.05, card.Scale(), 1e-6)

	clock.Advance(300 * time.Millisecond)
	assert.True(t, card.Flipped())
	assert.InDelta(t, 1, card.Scale(), 1e-6)

	card.Flip()
	assert.False(t, card.Flipped())
}

func TestSpinner_StopsAfterLoadingDuration(t *testing.T) {
	deps, clock := newTestDeps(t)
	spinner := NewSpinner(deps)

	spinner.StartLoading()
	assert.True(t, spinner.Active())
	assert.Equal(t, "Loading...", spinner.Status())

	clock.Advance(3 * time.Second)
	assert.False(t, spinner.Active())
	assert.Equal(t, "Done", spinner.Status())
}

func TestModal_OpenThenClose(t *testing.T) {
	deps, clock := newTestDeps(t)
	window := test.NewWindow(nil)
	defer window.Close()

	var locked bool
	modal := NewModal(deps, window.Canvas(), func(lock bool) { locked = lock })

	modal.Open()
	assert.True(t, modal.Visible())
	assert.False(t, modal.ScrollEnabled())
	assert.True(t, locked)
	assert.Zero(t, modal.Opacity(), "opacity follows on the next tick")

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, float32(1), modal.Opacity())

	modal.Close()
	assert.Zero(t, modal.Opacity())
	assert.True(t, modal.Visible())

	clock.Advance(300 * time.Millisecond)
	assert.False(t, modal.Visible())
	assert.True(t, modal.ScrollEnabled())
	assert.False(t, locked)
}

func TestModal_CloseSupersedesPendingOpen(t *testing.T) {
	deps, clock := newTestDeps(t)
	window := test.NewWindow(nil)
	defer window.Close()
	modal := NewModal(deps, window.Canvas(), nil)

	modal.Open()
	modal.Close()
	clock.Advance(time.Second)

	assert.False(t, modal.Visible())
	assert.Zero(t, modal.Opacity())
	assert.Zero(t, deps.Manager.Pending())
}

func TestCalculator_Calculate(t *testing.T) {
	deps, _ := newTestDeps(t)
	calculator := NewCalculator(deps)

	calculator.SetInput("6", "3", calc.Divide)
	calculator.Calculate()
	assert.Equal(t, "6 ÷ 3 = 2", calculator.Result())
	assert.Equal(t, []string{"6 ÷ 3 = 2"}, calculator.History())

	calculator.SetInput("6", "0", calc.Divide)
	calculator.Calculate()
	assert.Equal(t, "Invalid operation!", calculator.Result(), "division by zero reports the operation as invalid")

	calculator.SetInput("NaN", "1", calc.Add)
	calculator.Calculate()
	assert.Equal(t, "Please enter valid numbers!", calculator.Result())

	calculator.SetInput("six", "3", calc.Add)
	calculator.Calculate()
	assert.Equal(t, "Please enter valid numbers!", calculator.Result())
	assert.Len(t, calculator.History(), 1, "failed calculations are not recorded")
}

func TestCalculator_HistoryIsCapped(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.Config.MaxCalculations = 2
	calculator := NewCalculator(deps)

	for _, first := range []string{"1", "2", "3"} {
		calculator.SetInput(first, "1", calc.Add)
		calculator.Calculate()
	}
	assert.Equal(t, []string{"3 + 1 = 4", "2 + 1 = 3"}, calculator.History())
}

func TestCalculator_PreviewIsDebounced(t *testing.T) {
	deps, clock := newTestDeps(t)
	calculator := NewCalculator(deps)

	calculator.SetInput("2", "5", calc.Multiply)
	clock.Advance(100 * time.Millisecond)
	calculator.SetInput("2", "6", calc.Multiply)

	clock.Advance(299 * time.Millisecond)
	assert.Empty(t, calculator.Preview())

	clock.Advance(time.Millisecond)
	assert.Equal(t, "Preview: 2 × 6 = 12", calculator.Preview())
}

func TestFunctions_Demos(t *testing.T) {
	deps, _ := newTestDeps(t)
	functions := NewFunctions(deps)

	functions.Area()
	assert.Contains(t, functions.Output(), "Area: ")

	functions.Scope()
	functions.Scope()
	lines := strings.Split(functions.Output(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Call 1: global=4 local=1", lines[0])

	functions.Array()
	assert.Contains(t, functions.Output(), "Average: ")
	first := strings.Split(functions.Output(), "\n")[0]
	require.True(t, strings.HasPrefix(first, "Array: ["))
	assert.Len(t, strings.Split(strings.Trim(first, "Array: []"), ", "), 8)
}

func TestDynamic_RunsForDuration(t *testing.T) {
	deps, clock := newTestDeps(t)
	dynamic := NewDynamic(deps)
	var frames []animation.Frame
	dynamic.Register("alpha", func(frame animation.Frame) { frames = append(frames, frame) })

	dynamic.AddDynamicAnimation("alpha", "wiggle", 0)
	name, running := dynamic.Running("alpha")
	require.True(t, running)
	assert.True(t, strings.HasPrefix(name, "wiggle_"))

	clock.Advance(time.Second)
	_, running = dynamic.Running("alpha")
	assert.False(t, running)
	require.NotEmpty(t, frames)
	assert.Equal(t, animation.Rest(), frames[len(frames)-1])
}

func TestDynamic_UnknownNameAndMissingElement(t *testing.T) {
	deps, clock := newTestDeps(t)
	dynamic := NewDynamic(deps)
	dynamic.Register("beta", func(animation.Frame) {})

	dynamic.AddDynamicAnimation("beta", "spin-forever", 500*time.Millisecond)
	name, _ := dynamic.Running("beta")
	assert.True(t, strings.HasPrefix(name, "default_"))

	dynamic.AddDynamicAnimation("ghost", "glow", time.Second)
	_, running := dynamic.Running("ghost")
	assert.False(t, running)

	dynamic.Unregister("beta")
	assert.NotPanics(t, func() { clock.Advance(time.Second) })
	assert.Zero(t, deps.Manager.Pending())
	_, running = dynamic.Running("beta")
	assert.False(t, running, "the run is released even after the element is gone")
}

func TestDynamic_UnregisteredElementGetsNoFrames(t *testing.T) {
	deps, clock := newTestDeps(t)
	dynamic := NewDynamic(deps)
	frames := 0
	dynamic.Register("gamma", func(animation.Frame) { frames++ })

	dynamic.AddDynamicAnimation("gamma", "shake", 200*time.Millisecond)
	dynamic.Unregister("gamma")
	clock.Advance(200 * time.Millisecond)

	assert.Zero(t, frames)
	_, running := dynamic.Running("gamma")
	assert.False(t, running)
}

func TestWindow_ThemeFeedbackSequence(t *testing.T) {
	deps, clock := newTestDeps(t)
	playground := New(fyne.CurrentApp(), deps, theme.Light)

	playground.SetTheme(theme.Dark)
	toast := playground.Toast()
	assert.Equal(t, theme.Dark, playground.Theme())
	assert.Equal(t, "Theme changed to: dark", toast.Message())

	clock.Advance(time.Second)
	playground.SetTheme(theme.Colorful)
	assert.Equal(t, "Theme changed to: colorful", toast.Message())

	clock.Advance(2 * time.Second)
	assert.True(t, toast.Visible(), "exit animation is running")

	clock.Advance(300 * time.Millisecond)
	assert.False(t, toast.Visible())
	assert.Zero(t, deps.Manager.Pending())
}

func TestWindow_ModalLocksScroll(t *testing.T) {
	deps, clock := newTestDeps(t)
	playground := New(fyne.CurrentApp(), deps, theme.Light)

	playground.OpenModal()
	assert.True(t, playground.ScrollLocked())

	playground.CloseModal()
	clock.Advance(300 * time.Millisecond)
	assert.False(t, playground.ScrollLocked())
}
