// pkg/physics/kirchhoff.go
package physics

import "math"

// LoopResidual returns the algebraic sum of the voltages around a closed
// circuit loop. Kirchhoff's voltage law requires this sum to be zero.
func LoopResidual(voltages []float64) float64 {
	var sum float64
	for _, v := range voltages {
		sum += v
	}
	return sum
}

// VoltageLawSatisfied reports whether the voltages around a closed loop
// sum to zero within KVLTolerance.
func VoltageLawSatisfied(voltages []float64) bool {
	return math.Abs(LoopResidual(voltages)) < KVLTolerance
}
