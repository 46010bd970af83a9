// Package shapes provides the analytic kernels that idealized bottom
// topography is composed from. All kernels are pure functions of a position
// x, expressed relative to the feature center, and a positive characteristic
// width L.
package shapes

import "math"

// Bump returns 1 at x = 0 and falls off sinusoidally to 0, staying flat at 0
// once |x| reaches L/2 (and therefore also at |x| = L and beyond).
func Bump(x, L float64) float64 {
	return 1 - math.Sin(math.Pi*math.Min(math.Abs(x/L), 0.5))
}

// CosineBell returns 1 at x = 0, decaying smoothly to exactly 0 at |x| = L
// and beyond.
func CosineBell(x, L float64) float64 {
	return 0.5 * (1 + math.Cos(math.Pi*math.Min(math.Abs(x/L), 1)))
}

// HalfCosineBell is the one-sided quarter-cosine ramp: it is 1 at x = 0 on
// the active side selected by dir (+1 keeps x > 0, -1 keeps x < 0), decays to
// 0 at |x| = L, and is exactly 0 beyond the width or anywhere on the
// inactive side.
func HalfCosineBell(x, L, dir float64) float64 {
	if x*dir < 0 || math.Abs(x) >= L {
		return 0
	}
	return math.Cos(0.5 * math.Pi * math.Abs(x/L))
}

// Plateau is the flat indicator of the band |x| <= L.
func Plateau(x, L float64) float64 {
	if math.Abs(x) <= L {
		return 1
	}
	return 0
}
