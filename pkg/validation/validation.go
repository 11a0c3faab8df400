// Package validation provides input validation for user-supplied numeric
// values before they reach the formula library. The library functions
// themselves are total over finite inputs; these checks exist so the CLI
// and demo harness reject nonsense early with a clear message.
package validation

import (
	"fmt"
	"math"
)

// Input limits for scenario and CLI values.
const (
	// MaxLoopElements caps the number of voltages in a single loop
	MaxLoopElements = 1024

	// MaxMagnitude caps the absolute value accepted for any scalar input
	MaxMagnitude = 1e12
)

// ValidateFinite checks that a value is a finite, bounded number.
// The label names the value in error messages.
func ValidateFinite(label string, value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%s must be a number, got NaN", label)
	}
	if math.IsInf(value, 0) {
		return fmt.Errorf("%s must be finite, got %v", label, value)
	}
	if math.Abs(value) > MaxMagnitude {
		return fmt.Errorf("%s out of range: |%g| exceeds %g", label, value, MaxMagnitude)
	}
	return nil
}

// ValidateVoltageLoop checks a set of loop voltages for shape and finiteness.
func ValidateVoltageLoop(voltages []float64) error {
	if len(voltages) == 0 {
		return fmt.Errorf("voltage loop cannot be empty")
	}
	if len(voltages) > MaxLoopElements {
		return fmt.Errorf("voltage loop too large: %d elements (max %d)",
			len(voltages), MaxLoopElements)
	}
	for i, v := range voltages {
		if err := ValidateFinite(fmt.Sprintf("voltage[%d]", i), v); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRefractiveIndex checks that a refractive index is finite and
// strictly positive.
func ValidateRefractiveIndex(label string, n float64) error {
	if err := ValidateFinite(label, n); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %g", label, n)
	}
	return nil
}

// ValidateIntensity checks that a light intensity is finite and
// non-negative.
func ValidateIntensity(intensity float64) error {
	if err := ValidateFinite("intensity", intensity); err != nil {
		return err
	}
	if intensity < 0 {
		return fmt.Errorf("intensity cannot be negative, got %g", intensity)
	}
	return nil
}

// ValidateDensity checks that a fluid density is finite and non-negative.
func ValidateDensity(density float64) error {
	if err := ValidateFinite("density", density); err != nil {
		return err
	}
	if density < 0 {
		return fmt.Errorf("density cannot be negative, got %g", density)
	}
	return nil
}

// ValidateTolerance checks that a comparison tolerance is finite and
// strictly positive.
func ValidateTolerance(tolerance float64) error {
	if err := ValidateFinite("tolerance", tolerance); err != nil {
		return err
	}
	if tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", tolerance)
	}
	return nil
}
