// SPDX-License-Identifier: EPL-2.0

package utils

// Sample is the set of floating point sample types the interpolators work on.
type Sample interface {
	~float32 | ~float64
}

// CubicInterpolate evaluates a Catmull-Rom spline through y0..y3 at x,
// where x is the fractional position between y1 (x=0) and y2 (x=1).
func CubicInterpolate[T Sample](y0, y1, y2, y3, x T) T {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// CubicAt samples data at the fractional index pos, clamping the four
// neighbours to the slice edges.
func CubicAt[T Sample](data []T, pos float64) T {
	n := len(data)
	if n == 0 {
		return 0
	}

	i := int(pos)
	frac := T(pos - float64(i))

	at := func(k int) T {
		if k < 0 {
			k = 0
		} else if k >= n {
			k = n - 1
		}
		return data[k]
	}

	return CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), frac)
}
