package playground

import (
	"errors"
	"strings"

	"motionlab/internal/core/calc"
	"motionlab/internal/core/debounce"
	"motionlab/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type previewInput struct {
	first  string
	second string
	op     calc.Operation
}

// Calculator is the four-operation calculator with a live preview.
type Calculator struct {
	deps     Deps
	first    *widget.Entry
	second   *widget.Entry
	op       *widget.Select
	result   *widget.Label
	preview  *widget.Label
	history  *widget.Label
	layout   *frameLayout
	holder   *fyne.Container
	entries  []string
	operands map[string]calc.Operation
	refresh  *debounce.Debouncer[previewInput]
}

// NewCalculator creates the calculator panel.
func NewCalculator(deps Deps) *Calculator {
	deps = deps.withDefaults()
	calculator := &Calculator{
		deps:     deps,
		first:    widget.NewEntry(),
		second:   widget.NewEntry(),
		result:   widget.NewLabel("Result will appear here"),
		preview:  widget.NewLabel(""),
		history:  widget.NewLabel(""),
		layout:   newFrameLayout(),
		operands: make(map[string]calc.Operation),
	}
	calculator.first.SetPlaceHolder("First number")
	calculator.second.SetPlaceHolder("Second number")

	options := make([]string, 0, len(calc.Operations()))
	for _, op := range calc.Operations() {
		label := string(op) + " (" + calc.Symbol(op) + ")"
		calculator.operands[label] = op
		options = append(options, label)
	}
	calculator.op = widget.NewSelect(options, func(string) { calculator.schedulePreview() })
	calculator.op.SetSelected(options[0])

	calculator.refresh = debounce.New(deps.Scheduler, deps.Config.PreviewDebounce, calculator.renderPreview,
		debounce.WithLogger(deps.Logger))
	calculator.first.OnChanged = func(string) { calculator.schedulePreview() }
	calculator.second.OnChanged = func(string) { calculator.schedulePreview() }
	calculator.holder = container.New(calculator.layout, calculator.result)
	return calculator
}

// CanvasObject returns the calculator form.
func (calculator *Calculator) CanvasObject() fyne.CanvasObject {
	return container.NewVBox(
		container.NewGridWithColumns(3, calculator.first, calculator.op, calculator.second),
		widget.NewButton("Calculate", calculator.Calculate),
		calculator.holder,
		calculator.preview,
		calculator.history,
	)
}

// SetInput fills both operands and the operation.
func (calculator *Calculator) SetInput(first, second string, op calc.Operation) {
	calculator.first.SetText(first)
	calculator.second.SetText(second)
	for label, candidate := range calculator.operands {
		if candidate == op {
			calculator.op.SetSelected(label)
		}
	}
	calculator.schedulePreview()
}

// Calculate validates the inputs and shows the result.
func (calculator *Calculator) Calculate() {
	expression, err := calc.Evaluate(calculator.first.Text, calculator.second.Text, calculator.operation())
	switch {
	case errors.Is(err, calc.ErrInvalidNumber):
		calculator.showResult("Please enter valid numbers!", false)
	case err != nil:
		calculator.showResult("Invalid operation!", false)
	default:
		calculator.showResult(expression, true)
		calculator.remember(expression)
	}
}

// Result returns the result caption.
func (calculator *Calculator) Result() string {
	return calculator.result.Text
}

// Preview returns the live preview caption.
func (calculator *Calculator) Preview() string {
	return calculator.preview.Text
}

// History returns the finished calculations, newest first.
func (calculator *Calculator) History() []string {
	return append([]string(nil), calculator.entries...)
}

func (calculator *Calculator) operation() calc.Operation {
	return calculator.operands[calculator.op.Selected]
}

func (calculator *Calculator) schedulePreview() {
	if calculator.refresh == nil || calculator.first == nil || calculator.second == nil {
		return
	}
	calculator.refresh.Trigger(previewInput{
		first:  calculator.first.Text,
		second: calculator.second.Text,
		op:     calculator.operation(),
	})
}

func (calculator *Calculator) renderPreview(input previewInput) {
	if strings.TrimSpace(input.first) == "" || strings.TrimSpace(input.second) == "" {
		calculator.preview.SetText("")
		return
	}
	expression, err := calc.Evaluate(input.first, input.second, input.op)
	if err != nil {
		calculator.preview.SetText("Preview: " + err.Error())
		return
	}
	calculator.preview.SetText("Preview: " + expression)
}

func (calculator *Calculator) showResult(message string, success bool) {
	calculator.result.SetText(message)
	if success {
		calculator.result.Importance = widget.SuccessImportance
	} else {
		calculator.result.Importance = widget.DangerImportance
	}
	calculator.result.Refresh()
	calculator.deps.Manager.Start(SubjectCalcResult,
		func() { calculator.render(animation.Frame{Scale: 1.05}) },
		func() { calculator.render(animation.Rest()) },
		calculator.deps.Config.Surfaces.ResultPulse,
	)
}

func (calculator *Calculator) remember(expression string) {
	calculator.entries = append([]string{expression}, calculator.entries...)
	if limit := calculator.deps.Config.MaxCalculations; limit > 0 && len(calculator.entries) > limit {
		calculator.entries = calculator.entries[:limit]
	}
	calculator.history.SetText(strings.Join(calculator.entries, "\n"))
}

func (calculator *Calculator) render(frame animation.Frame) {
	calculator.layout.frame = frame
	calculator.holder.Refresh()
}
