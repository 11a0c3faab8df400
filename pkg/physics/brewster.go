// pkg/physics/brewster.go
package physics

import "math"

// BrewsterAngle returns the angle of incidence, in degrees, at which light
// travelling from a medium with refractive index n1 into a medium with
// refractive index n2 reflects with complete polarization.
func BrewsterAngle(n1, n2 float64) float64 {
	return RadiansToDegrees(math.Atan(n2 / n1))
}
