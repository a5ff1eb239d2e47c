package julia

import (
	"math"

	"golang.org/x/exp/constraints"
)

// maxLevel is the brightest 8-bit sample value.
const maxLevel = 255

// StartPoint maps pixel (x, y) of a width x height grid to the initial
// iterate z0.
//
// The grid centre (width/2, height/2, integer division) maps to the origin
// and both axes are scaled by height*mag, so pixels are square in the
// complex plane only when the grid is.
func StartPoint(x, y, width, height int, mag float64) Complex {
	scale := float64(height) * mag
	return Complex{
		Re: float64(x-width/2) / scale,
		Im: float64(y-height/2) / scale,
	}
}

// Escape iterates z = z² + c from z0 and returns the loop index at which
// |z| first exceeds radius, or maxIter if the orbit stays bounded.
// An orbit that escapes on its first step returns 0.
func Escape(z0, c Complex, maxIter int, radius float64) int {
	limit := radius * radius
	z := z0
	n := 0
	for ; n < maxIter; n++ {
		z = Add(Mul(z, z), c)
		if z.AbsSq() > limit {
			break
		}
	}
	return n
}

// Orbit returns the first k iterates z1..zk of z = z² + c starting at z0,
// without any escape test.
func Orbit(z0, c Complex, k int) []Complex {
	if k <= 0 {
		return nil
	}
	out := make([]Complex, k)
	z := z0
	for i := range out {
		z = Add(Mul(z, z), c)
		out[i] = z
	}
	return out
}

// Level converts an escape count into a mask sample.
//
// The count is normalized to t = n/maxIter in [0, 1], raised to gamma to
// brighten slow-escaping pixels, scaled to levels-1 and rounded. The result
// always lies in [0, levels-1]. A non-positive maxIter yields 0.
func Level(n, maxIter, levels int, gamma float64) uint8 {
	if maxIter <= 0 {
		return 0
	}
	top := clamp(levels-1, 0, maxLevel)
	t := clamp(float64(n)/float64(maxIter), 0, 1)
	v := math.Round(float64(top) * math.Pow(t, gamma))
	// #nosec G115 -- clamped to [0, 255]
	return uint8(clamp(v, 0, float64(top)))
}

// clamp limits v to [lo, hi].
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
