package playground

import (
	"fmt"
	"strings"

	"motionlab/internal/core/calc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// arrayLength and arrayLimit size the random array demo.
const (
	arrayLength = 8
	arrayLimit  = 100
)

// Functions runs the function-call demos and shows their output.
type Functions struct {
	deps    Deps
	counter calc.Counter
	output  *widget.Label
}

// NewFunctions creates the demo panel.
func NewFunctions(deps Deps) *Functions {
	deps = deps.withDefaults()
	output := widget.NewLabel("Press a button to run a demo")
	output.Wrapping = fyne.TextWrapWord
	return &Functions{deps: deps, output: output}
}

// CanvasObject returns the demo buttons and their output.
func (functions *Functions) CanvasObject() fyne.CanvasObject {
	return container.NewVBox(
		container.NewGridWithColumns(3,
			widget.NewButton("Area", functions.Area),
			widget.NewButton("Scope", functions.Scope),
			widget.NewButton("Array", functions.Array),
		),
		functions.output,
	)
}

// Output returns the text of the last demo.
func (functions *Functions) Output() string {
	return functions.output.Text
}

// Area computes the area of a random rectangle.
func (functions *Functions) Area() {
	width, height := calc.RandomDimensions(functions.deps.Rand)
	functions.show(fmt.Sprintf("Rectangle %d × %d\nArea: %d", width, height, calc.RectangleArea(width, height)))
}

// Scope runs the nested counter three times.
func (functions *Functions) Scope() {
	var lines []string
	for i, counts := range functions.counter.Demonstrate(3) {
		lines = append(lines, fmt.Sprintf("Call %d: global=%d local=%d", i+1, counts.Global, counts.Local))
	}
	functions.show(strings.Join(lines, "\n"))
}

// Array summarizes a random array.
func (functions *Functions) Array() {
	summary := calc.Summarize(calc.RandomArray(functions.deps.Rand, arrayLength, arrayLimit))
	values := make([]string, len(summary.Values))
	for i, value := range summary.Values {
		values[i] = fmt.Sprint(value)
	}
	functions.show(fmt.Sprintf("Array: [%s]\nSum: %d\nAverage: %.2f\nMax: %d\nMin: %d",
		strings.Join(values, ", "), summary.Sum, summary.Average, summary.Max, summary.Min))
}

func (functions *Functions) show(text string) {
	functions.output.SetText(text)
	functions.deps.Logger.Debug("function demo", "output", text)
}
