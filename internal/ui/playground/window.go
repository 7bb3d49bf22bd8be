// Package playground builds the MotionLab window: a scrolling page of demo
// surfaces whose timed visual states all run through one transition manager.
package playground

import (
	"motionlab/internal/core/theme"
	"motionlab/internal/ui/palette"
	"motionlab/internal/ui/shortcuts"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	defaultWidth  = float32(960)
	defaultHeight = float32(720)
)

// Window is the playground window.
type Window struct {
	app       fyne.App
	window    fyne.Window
	deps      Deps
	scroll    *container.Scroll
	selector  *theme.Selector
	toast     *Toast
	box       *Box
	card      *Card
	spinner   *Spinner
	modal     *Modal
	calc      *Calculator
	functions *Functions
	dynamic   *Dynamic
	picker    *widget.RadioGroup
	onTheme   func(theme.Selection)
}

// New creates the playground window showing initial as its theme.
func New(app fyne.App, deps Deps, initial theme.Selection) *Window {
	deps = deps.withDefaults()
	window := app.NewWindow("MotionLab")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	playground := &Window{
		app:       app,
		window:    window,
		deps:      deps,
		toast:     NewToast(deps),
		box:       NewBox(deps),
		card:      NewCard(deps),
		spinner:   NewSpinner(deps),
		calc:      NewCalculator(deps),
		functions: NewFunctions(deps),
		dynamic:   NewDynamic(deps),
	}
	playground.modal = NewModal(deps, window.Canvas(), playground.lockScroll)
	playground.selector = theme.NewSelector(deps.Manager, initial, playground.applyTheme, playground.toast,
		theme.Timing{Display: deps.Config.Feedback.Display, Exit: deps.Config.Feedback.Exit})

	options := make([]string, 0, len(theme.All()))
	for _, selection := range theme.All() {
		options = append(options, selection.String())
	}
	playground.picker = widget.NewRadioGroup(options, func(value string) {
		if selection, err := theme.Parse(value); err == nil && selection != playground.selector.Current() {
			playground.selector.Set(selection)
		}
	})
	playground.picker.Horizontal = true
	playground.picker.SetSelected(initial.String())

	dynamicPanel := NewDynamicPanel(playground.dynamic, "alpha", "beta", "gamma")
	page := container.NewVBox(
		section("Theme", playground.picker),
		section("Functions", playground.functions.CanvasObject()),
		section("Calculator", playground.calc.CanvasObject()),
		section("Animated box", playground.box.CanvasObject()),
		section("Flip card", playground.card.CanvasObject()),
		section("Loading", playground.spinner.CanvasObject()),
		section("Dynamic animations", dynamicPanel.CanvasObject()),
		section("Modal", widget.NewButton("Open modal", playground.OpenModal)),
	)
	playground.scroll = container.NewVScroll(container.NewPadded(page))

	window.SetContent(container.NewStack(playground.scroll, playground.toast.CanvasObject()))
	window.Resize(fyne.NewSize(defaultWidth, defaultHeight))
	window.SetCloseIntercept(func() {
		window.Hide()
	})
	playground.applyTheme(initial)

	shortcuts.Bind(window.Canvas(), shortcuts.Defaults(), map[shortcuts.Action]func(){
		shortcuts.ActionArea:      playground.functions.Area,
		shortcuts.ActionScope:     playground.functions.Scope,
		shortcuts.ActionArray:     playground.functions.Array,
		shortcuts.ActionOpenModal: playground.OpenModal,
	})
	return playground
}

func section(title string, content fyne.CanvasObject) fyne.CanvasObject {
	return widget.NewCard(title, "", content)
}

// Show brings the window to front.
func (playground *Window) Show() {
	playground.window.Show()
	playground.window.RequestFocus()
}

// OpenModal opens the dynamic modal.
func (playground *Window) OpenModal() {
	playground.modal.Open()
}

// CloseModal closes the dynamic modal.
func (playground *Window) CloseModal() {
	playground.modal.Close()
}

// StartLoading runs the loading indicator.
func (playground *Window) StartLoading() {
	playground.spinner.StartLoading()
}

// SetTheme selects a theme and shows the change notice.
func (playground *Window) SetTheme(selection theme.Selection) {
	playground.picker.SetSelected(selection.String())
	if playground.selector.Current() != selection {
		playground.selector.Set(selection)
	}
}

// SetOnThemeChanged registers fn to run after every applied theme.
func (playground *Window) SetOnThemeChanged(fn func(theme.Selection)) {
	playground.onTheme = fn
}

// SetOnClose replaces the default close behaviour, which only hides the
// window.
func (playground *Window) SetOnClose(fn func()) {
	playground.window.SetCloseIntercept(fn)
}

// Theme returns the selected theme.
func (playground *Window) Theme() theme.Selection {
	return playground.selector.Current()
}

// Toast returns the theme-change notice.
func (playground *Window) Toast() *Toast {
	return playground.toast
}

// Box returns the animated box.
func (playground *Window) Box() *Box {
	return playground.box
}

// Card returns the flip card.
func (playground *Window) Card() *Card {
	return playground.card
}

// Spinner returns the loading indicator.
func (playground *Window) Spinner() *Spinner {
	return playground.spinner
}

// Modal returns the dynamic modal.
func (playground *Window) Modal() *Modal {
	return playground.modal
}

// Calculator returns the calculator.
func (playground *Window) Calculator() *Calculator {
	return playground.calc
}

// Functions returns the function demos.
func (playground *Window) Functions() *Functions {
	return playground.functions
}

// Dynamic returns the dynamic animation registry.
func (playground *Window) Dynamic() *Dynamic {
	return playground.dynamic
}

// ScrollLocked reports whether page scrolling is disabled.
func (playground *Window) ScrollLocked() bool {
	return playground.scroll.Direction == container.ScrollNone
}

// Close stops every animation and pending transition and closes the window.
func (playground *Window) Close() {
	playground.deps.Engine.StopAll()
	playground.deps.Manager.Close()
	playground.window.Close()
}

func (playground *Window) applyTheme(selection theme.Selection) {
	playground.app.Settings().SetTheme(palette.For(selection))
	playground.deps.Logger.Info("theme applied", "theme", selection.String())
	if playground.onTheme != nil {
		playground.onTheme(selection)
	}
}

func (playground *Window) lockScroll(locked bool) {
	if locked {
		playground.scroll.Direction = container.ScrollNone
	} else {
		playground.scroll.Direction = container.ScrollVerticalOnly
	}
	playground.scroll.Refresh()
}
