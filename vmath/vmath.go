// Package vmath provides the float64 vector and matrix value types
// shared by the physics and render layers.
package vmath

// Clamp limits v to the range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t, unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
