package gamemath

import "math"

// ChargeEpsilon is the residue below which a draining charge counts as empty.
// Repeated per-frame subtraction of rate*spf accumulates rounding error, so a
// battery sized for exactly N frames would otherwise linger one frame longer.
const ChargeEpsilon = 1e-9

// AddCharge returns charge+x saturated at max.
func AddCharge(charge, x, max float64) float64 {
	return math.Min(max, charge+x)
}

// SubtractCharge returns charge-x saturated at 0.
func SubtractCharge(charge, x float64) float64 {
	charge -= x
	if charge <= ChargeEpsilon {
		return 0
	}
	return charge
}

// ChargeLevel maps charge in [0, max] to a display level in [0, levels-1].
func ChargeLevel(charge, max float64, levels int) int {
	if max <= 0 || levels <= 0 {
		return 0
	}
	level := int(math.Floor(float64(levels) * charge / max))
	if level > levels-1 {
		level = levels - 1
	}
	if level < 0 {
		level = 0
	}
	return level
}
