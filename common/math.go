package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ApproachFactor is the per-frame blend weight for an exponential approach at
// rate per second. The result is in [0, 1] so a long frame never overshoots.
func ApproachFactor(rate, dt float64) float64 {
	f := rate * dt
	if math.IsNaN(f) {
		return 0
	}
	return Clamp(f, 0, 1)
}
