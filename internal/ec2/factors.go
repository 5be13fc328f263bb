package ec2

// Crack control constants, Section 7.3.4 (UK National Annex values)
const (
	K1 = 0.8   // high bond bars
	K2 = 0.5   // bending
	K3 = 3.4   // cover coefficient
	K4 = 0.425 // bar coefficient

	// Kt is the load duration factor for long term loading
	Kt = 0.4
)

// Lever arm and neutral axis constants for the simplified rectangular
// stress block (fck <= 50 MPa)
const (
	MaxLeverArmRatio      = 0.95
	NeutralAxisFactor     = 2.5   // x = 2.5(d - z)
	LeverArmCoefficient   = 3.53  // z = d/2 (1 + sqrt(1 - 3.53K))
	RecommendedKPrime     = 0.168 // x/d limited to 0.45
	MinReinforcementRatio = 0.0013

	// Ultimate compressive strain of the rectangular stress block
	EpsilonCU3 = 0.0035
)

// KFactor is the coefficient k of Section 7.3.2 (2) that allows for
// non-uniform self-equilibrating stresses. size is the web depth or
// flange width in mm.
func KFactor(size float64) float64 {
	switch {
	case size <= 300:
		return 1.0
	case size >= 800:
		return 0.65
	default:
		return 0.65 + (800-size)*0.35/500
	}
}
