package main

import (
	"bytes"
	"errors"
	"testing"

	"motionlab/internal/core/calc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	out, err := execute(t, "calc", "6", "/", "4")
	require.NoError(t, err)
	assert.Equal(t, "6 ÷ 4 = 1.5\n", out)

	_, err = execute(t, "calc", "1", "÷", "0")
	assert.True(t, errors.Is(err, calc.ErrDivideByZero))

	_, err = execute(t, "calc", "1", "%", "2")
	assert.True(t, errors.Is(err, calc.ErrInvalidOperation))
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "4", "8", "15")
	require.NoError(t, err)
	assert.Equal(t, "sum: 27\naverage: 9.00\nmax: 15\nmin: 4\n", out)

	_, err = execute(t, "stats", "4", "x")
	assert.True(t, errors.Is(err, calc.ErrInvalidNumber))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "motionlab version dev\n", out)
}
