// SPDX-License-Identifier: EPL-2.0

package utils

// ClampUnit limits x to the unit interval [0, 1].
// NaN is mapped to 0 so a bad coefficient can never poison filter state.
func ClampUnit(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Clamp limits x to [lo, hi]. lo must not be greater than hi.
func Clamp(x, lo, hi float64) float64 {
	if x != x { // NaN
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
