// pkg/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultTolerance is the comparison tolerance applied to scenario checks
// that do not declare their own.
const DefaultTolerance = 1e-9

// ScenarioConfig contains the worked examples the demo harness evaluates.
type ScenarioConfig struct {
	Tolerance float64             `toml:"tolerance"`
	Complex   []ComplexScenario   `toml:"complex"`
	Kirchhoff []KirchhoffScenario `toml:"kirchhoff"`
	Brewster  []BrewsterScenario  `toml:"brewster"`
	Malus     []MalusScenario     `toml:"malus"`
	Bernoulli []BernoulliScenario `toml:"bernoulli"`
}

// ComplexScenario describes one complex-arithmetic check. A and B hold
// (real, imaginary) pairs; Want holds the expected components, or a single
// scalar for the abs and arg operations.
type ComplexScenario struct {
	Name      string    `toml:"name"`
	Op        string    `toml:"op"`
	A         []float64 `toml:"a"`
	B         []float64 `toml:"b,omitempty"`
	Want      []float64 `toml:"want"`
	Tolerance float64   `toml:"tolerance,omitempty"`
}

// KirchhoffScenario describes one voltage-loop check.
type KirchhoffScenario struct {
	Name         string    `toml:"name"`
	Voltages     []float64 `toml:"voltages"`
	WantBalanced bool      `toml:"wantBalanced"`
}

// BrewsterScenario describes one Brewster-angle check.
type BrewsterScenario struct {
	Name        string  `toml:"name"`
	N1          float64 `toml:"n1"`
	N2          float64 `toml:"n2"`
	WantDegrees float64 `toml:"wantDegrees"`
	Tolerance   float64 `toml:"tolerance,omitempty"`
}

// MalusScenario describes one polarization-intensity check.
type MalusScenario struct {
	Name          string  `toml:"name"`
	Intensity     float64 `toml:"intensity"`
	AngleDegrees  float64 `toml:"angleDegrees"`
	WantIntensity float64 `toml:"wantIntensity"`
	Tolerance     float64 `toml:"tolerance,omitempty"`
}

// BernoulliScenario describes one total-pressure check. An omitted
// Gravity means standard gravity; an explicit zero is honored.
type BernoulliScenario struct {
	Name         string   `toml:"name"`
	Pressure     float64  `toml:"pressure"`
	Density      float64  `toml:"density"`
	Velocity     float64  `toml:"velocity"`
	Height       float64  `toml:"height"`
	Gravity      *float64 `toml:"gravity,omitempty"`
	WantPressure float64  `toml:"wantPressure"`
	Tolerance    float64  `toml:"tolerance,omitempty"`
}

// LoadScenarios loads a scenario configuration from a TOML file. A zero
// Tolerance means the file did not set one; callers supply a fallback.
func LoadScenarios(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	return &cfg, nil
}

// SaveScenarios saves a scenario configuration to a TOML file.
func SaveScenarios(cfg *ScenarioConfig, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal scenarios: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}

	return nil
}

// DefaultScenarios returns the built-in worked examples.
func DefaultScenarios() *ScenarioConfig {
	return &ScenarioConfig{
		Tolerance: DefaultTolerance,
		Complex: []ComplexScenario{
			{
				Name: "pythagorean_magnitude",
				Op:   "abs",
				A:    []float64{3, 4},
				Want: []float64{5},
			},
			{
				Name:      "pythagorean_argument",
				Op:        "arg",
				A:         []float64{3, 4},
				Want:      []float64{0.9272952180016122},
				Tolerance: 1e-4,
			},
			{
				Name: "product",
				Op:   "mul",
				A:    []float64{1, 2},
				B:    []float64{3, 4},
				Want: []float64{-5, 10},
			},
			{
				Name: "reciprocal_of_i",
				Op:   "div",
				A:    []float64{1, 0},
				B:    []float64{0, 1},
				Want: []float64{0, -1},
			},
			{
				Name: "conjugate",
				Op:   "conj",
				A:    []float64{3, 4},
				Want: []float64{3, -4},
			},
		},
		Kirchhoff: []KirchhoffScenario{
			{
				Name:         "balanced_loop",
				Voltages:     []float64{10, -4, -6},
				WantBalanced: true,
			},
			{
				Name:         "unbalanced_loop",
				Voltages:     []float64{12, -5, -4},
				WantBalanced: false,
			},
		},
		Brewster: []BrewsterScenario{
			{
				Name:        "air_to_glass",
				N1:          1.0,
				N2:          1.5,
				WantDegrees: 56.31,
				Tolerance:   0.01,
			},
		},
		Malus: []MalusScenario{
			{
				Name:          "parallel_polarizers",
				Intensity:     100,
				AngleDegrees:  0,
				WantIntensity: 100,
			},
			{
				Name:          "perpendicular_polarizers",
				Intensity:     100,
				AngleDegrees:  90,
				WantIntensity: 0,
				Tolerance:     1e-9,
			},
			{
				Name:          "diagonal_polarizers",
				Intensity:     100,
				AngleDegrees:  45,
				WantIntensity: 50,
				Tolerance:     1e-9,
			},
		},
		Bernoulli: []BernoulliScenario{
			{
				Name:         "sea_level_air",
				Pressure:     101325,
				Density:      1.225,
				Velocity:     10,
				Height:       5,
				WantPressure: 101446.31573062501,
				Tolerance:    0.1,
			},
		},
	}
}
