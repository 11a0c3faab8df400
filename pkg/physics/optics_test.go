// pkg/physics/optics_test.go
package physics

import (
	"math"
	"testing"
)

func TestBrewsterAngle(t *testing.T) {
	tests := []struct {
		name     string
		n1       float64
		n2       float64
		expected float64
	}{
		{
			name:     "air_to_glass",
			n1:       1.0,
			n2:       1.5,
			expected: 56.309932474020215,
		},
		{
			name:     "air_to_water",
			n1:       1.0,
			n2:       1.33,
			expected: 53.06123726771017,
		},
		{
			name:     "equal_indices",
			n1:       1.5,
			n2:       1.5,
			expected: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BrewsterAngle(tt.n1, tt.n2)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("BrewsterAngle(%v, %v) = %v, expected %v",
					tt.n1, tt.n2, result, tt.expected)
			}
		})
	}
}

func TestTransmittedIntensity(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		angle    float64
		expected float64
	}{
		{
			name:     "parallel_polarizers",
			initial:  100,
			angle:    0,
			expected: 100,
		},
		{
			name:     "perpendicular_polarizers",
			initial:  100,
			angle:    90,
			expected: 0,
		},
		{
			name:     "forty_five_degrees",
			initial:  100,
			angle:    45,
			expected: 50,
		},
		{
			name:     "sixty_degrees",
			initial:  80,
			angle:    60,
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TransmittedIntensity(tt.initial, tt.angle)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("TransmittedIntensity(%v, %v) = %v, expected %v",
					tt.initial, tt.angle, result, tt.expected)
			}
		})
	}
}

func TestAngleConversions(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		radians float64
	}{
		{"zero", 0, 0},
		{"right_angle", 90, math.Pi / 2},
		{"half_turn", 180, math.Pi},
		{"negative", -45, -math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DegreesToRadians(tt.degrees); math.Abs(got-tt.radians) > 1e-12 {
				t.Errorf("DegreesToRadians(%v) = %v, expected %v", tt.degrees, got, tt.radians)
			}
			if got := RadiansToDegrees(tt.radians); math.Abs(got-tt.degrees) > 1e-12 {
				t.Errorf("RadiansToDegrees(%v) = %v, expected %v", tt.radians, got, tt.degrees)
			}
		})
	}
}
