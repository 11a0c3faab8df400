package physics

// Physical constants and shared tolerances
const (
	// StandardGravity is the standard acceleration due to gravity (m/s^2)
	StandardGravity = 9.80665

	// KVLTolerance is the residual threshold below which a voltage loop
	// is considered balanced
	KVLTolerance = 1e-6
)
