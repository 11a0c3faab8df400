// pkg/physics/malus.go
package physics

import "math"

// TransmittedIntensity returns the intensity of polarized light after
// passing through an analyzer rotated angleDegrees from the polarizer,
// per Malus' law: I = I0 * cos^2(theta).
func TransmittedIntensity(initial, angleDegrees float64) float64 {
	cos := math.Cos(DegreesToRadians(angleDegrees))
	return initial * cos * cos
}
