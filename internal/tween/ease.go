package tween

import "math"

// Ease maps linear progress t in [0, 1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

// EaseOutCubic starts fast and settles slowly: 1 - (1-t)^3.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad is the gentler 1 - (1-t)^2.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
