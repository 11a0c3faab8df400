package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestComplexCmd_Add(t *testing.T) {
	out, err := executeCommand(t, "complex", "add", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "(4 + 6i)")
}

func TestComplexCmd_Mul(t *testing.T) {
	out, err := executeCommand(t, "complex", "mul", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "(-5 + 10i)")
}

func TestComplexCmd_Div(t *testing.T) {
	out, err := executeCommand(t, "complex", "div", "1", "0", "0", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "(0 - 1i)")
}

func TestComplexCmd_DivByZero(t *testing.T) {
	_, err := executeCommand(t, "complex", "div", "1", "1", "0", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestComplexCmd_Abs(t *testing.T) {
	out, err := executeCommand(t, "complex", "abs", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "5")
}

func TestComplexCmd_Conj(t *testing.T) {
	out, err := executeCommand(t, "complex", "conj", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "(3 - 4i)")
}

func TestComplexCmd_PolarInput(t *testing.T) {
	defer func() { complexPolar = false }()

	out, err := executeCommand(t, "complex", "--polar", "add", "2", "0", "3", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "(5 + 0i)")
}

func TestComplexCmd_NegativeComponents(t *testing.T) {
	out, err := executeCommand(t, "complex", "add", "-1", "-2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "(2 + 2i)")
}

func TestComplexCmd_UnknownOperation(t *testing.T) {
	_, err := executeCommand(t, "complex", "pow", "1", "2", "3", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestComplexCmd_WrongArity(t *testing.T) {
	_, err := executeCommand(t, "complex", "add", "1", "2")
	require.Error(t, err)

	_, err = executeCommand(t, "complex", "abs", "1", "2", "3", "4")
	require.Error(t, err)
}

func TestComplexCmd_NonNumericOperand(t *testing.T) {
	_, err := executeCommand(t, "complex", "add", "1", "two", "3", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}
