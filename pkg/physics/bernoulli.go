// pkg/physics/bernoulli.go
package physics

// TotalPressure returns the total pressure of a steady, incompressible
// flow under standard gravity: static pressure plus dynamic pressure
// plus hydrostatic pressure.
func TotalPressure(pressure, density, velocity, height float64) float64 {
	return TotalPressureWithGravity(pressure, density, velocity, height, StandardGravity)
}

// TotalPressureWithGravity is TotalPressure with an explicit gravitational
// acceleration, for bodies other than Earth.
func TotalPressureWithGravity(pressure, density, velocity, height, gravity float64) float64 {
	return pressure + 0.5*density*velocity*velocity + density*gravity*height
}
