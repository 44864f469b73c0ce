package ease

import "math"

// InOutCubic eases k in [0,1] with a cubic ramp that is slow at both ends.
// Values outside [0,1] are clamped.
func InOutCubic(k float64) float64 {
	if k <= 0 {
		return 0
	}
	if k >= 1 {
		return 1
	}
	if k < 0.5 {
		return 4 * k * k * k
	}
	return 1 - math.Pow(-2*k+2, 3)/2
}

// Progress returns how far elapsed is through duration, clamped to [0,1].
// A non-positive duration is already complete.
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return math.Min(math.Max(elapsed/duration, 0), 1)
}
