package gamemath

import "math"

// ScaleToLength returns (x, y) rescaled to the given length.
// A zero vector is returned unchanged.
func ScaleToLength(x, y, length float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return x, y
	}
	k := length / mag
	return x * k, y * k
}

// Wrap maps v onto [0, size), re-entering from the opposite edge when v
// falls outside. size must be positive.
func Wrap(v, size float64) float64 {
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	// r+size can round up to size for tiny negative r
	if r >= size {
		r = 0
	}
	return r
}

// ParallaxSpeed returns the scroll speed of a background element at height y.
// Elements nearer the top of the canvas move faster.
func ParallaxSpeed(y, canvasHeight, maxSpeed, depthDivisor float64) float64 {
	return (canvasHeight - y) / canvasHeight * maxSpeed / depthDivisor
}
