// Package calc implements the calculator and the function demos shown in
// the playground.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDivideByZero is returned instead of an infinite quotient.
	ErrDivideByZero = errors.New("division by zero")
	// ErrInvalidOperation indicates an operation outside the four supported.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidNumber indicates an operand that is not a number.
	ErrInvalidNumber = errors.New("please enter valid numbers")
)

// Operation is a calculator operation.
type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Operations returns the supported operations in display order.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// ParseOperation accepts an operation name or its symbol.
func ParseOperation(value string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "add", "+":
		return Add, nil
	case "subtract", "-", "−":
		return Subtract, nil
	case "multiply", "*", "x", "×":
		return Multiply, nil
	case "divide", "/", "÷":
		return Divide, nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidOperation, value)
	}
}

// Calculate applies op to a and b.
func Calculate(a, b float64, op Operation) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidOperation, op)
	}
}

// Symbol returns the display symbol of op, or "?" when unknown.
func Symbol(op Operation) string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

// ParseOperands parses both calculator inputs.
func ParseOperands(a, b string) (float64, float64, error) {
	first, err := parseNumber(a)
	if err != nil {
		return 0, 0, err
	}
	second, err := parseNumber(b)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

// Evaluate parses the raw inputs and renders "a op b = result".
func Evaluate(a, b string, op Operation) (string, error) {
	first, second, err := ParseOperands(a, b)
	if err != nil {
		return "", err
	}
	result, err := Calculate(first, second, op)
	if err != nil {
		return "", err
	}
	return Expression(first, second, op, result), nil
}

// Expression renders a finished calculation.
func Expression(a, b float64, op Operation, result float64) string {
	return fmt.Sprintf("%s %s %s = %s", FormatNumber(a), Symbol(op), FormatNumber(b), FormatNumber(result))
}

// FormatNumber prints integers without a fraction and other values in their
// shortest form.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func parseNumber(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return parsed, nil
}
