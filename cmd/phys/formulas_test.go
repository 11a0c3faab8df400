package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKirchhoffCmd_BalancedLoop(t *testing.T) {
	out, err := executeCommand(t, "kirchhoff", "10", "-4", "-6")
	require.NoError(t, err)
	assert.Contains(t, out, "residual: 0 V")
	assert.Contains(t, out, "loop is balanced")
}

func TestKirchhoffCmd_UnbalancedLoop(t *testing.T) {
	out, err := executeCommand(t, "kirchhoff", "12", "-5", "-4")
	require.NoError(t, err)
	assert.Contains(t, out, "residual: 3 V")
	assert.Contains(t, out, "loop is NOT balanced")
}

func TestKirchhoffCmd_RejectsNonNumeric(t *testing.T) {
	_, err := executeCommand(t, "kirchhoff", "10", "volts")
	require.Error(t, err)
}

func TestBrewsterCmd_AirToGlass(t *testing.T) {
	out, err := executeCommand(t, "brewster", "1.0", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "56.30993247")
	assert.Contains(t, out, "degrees")
}

func TestBrewsterCmd_RejectsNonPositiveIndex(t *testing.T) {
	_, err := executeCommand(t, "brewster", "0", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestMalusCmd_DiagonalPolarizers(t *testing.T) {
	out, err := executeCommand(t, "malus", "100", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "50")
}

func TestMalusCmd_RejectsNegativeIntensity(t *testing.T) {
	_, err := executeCommand(t, "malus", "--", "-100", "45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestBernoulliCmd_SeaLevelAir(t *testing.T) {
	out, err := executeCommand(t, "bernoulli", "101325", "1.225", "10", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "101446.3")
	assert.Contains(t, out, "Pa")
}

func TestBernoulliCmd_CustomGravity(t *testing.T) {
	defer bernoulliCmd.Flags().Set("gravity", "9.80665")

	out, err := executeCommand(t, "bernoulli", "--gravity", "0", "1000", "2", "3", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "1009 Pa")
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-1.0.0"
	defer func() { version = originalVersion }()

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "phys version test-1.0.0")
}
