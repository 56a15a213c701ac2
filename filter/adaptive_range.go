// SPDX-License-Identifier: EPL-2.0

package filter

import "github.com/ik5/ppgbeat/utils"

// degenerate is returned by Normalize while the envelope has zero width.
const degenerate = 0.5

// AdaptiveRange tracks the [min, max] envelope of a scalar stream and maps each
// sample into [0, 1]. The zero value is ready to use.
type AdaptiveRange struct {
	lastInput   float64
	min         float64
	max         float64
	normalized  float64
	initialized bool
}

// Normalize widens the envelope to contain x if needed and returns the
// position of x inside it. The first call after construction or Reset seeds
// min = max = x and returns 0.5, as does any call while min == max.
func (r *AdaptiveRange) Normalize(x float64) float64 {
	r.lastInput = x

	if !r.initialized {
		r.initialized = true
		r.min = x
		r.max = x
	} else {
		if x > r.max {
			r.max = x
		}
		if x < r.min {
			r.min = x
		}
	}

	if r.max == r.min {
		r.normalized = degenerate
	} else {
		r.normalized = (x - r.min) / (r.max - r.min)
	}

	return r.normalized
}

// Decay moves both bounds a fraction coefficient² of the way toward the last
// normalized input. coefficient is clamped to [0, 1]; squaring keeps small
// settings nearly inert. This is the only way the envelope shrinks.
func (r *AdaptiveRange) Decay(coefficient float64) {
	c := utils.ClampUnit(coefficient)
	c *= c

	r.min += (r.lastInput - r.min) * c
	r.max += (r.lastInput - r.max) * c
}

// Reset returns the range to its uninitialized zero state.
func (r *AdaptiveRange) Reset() {
	*r = AdaptiveRange{}
}

func (r *AdaptiveRange) Min() float64 { return r.min }
func (r *AdaptiveRange) Max() float64 { return r.max }

// Width is max - min, the envelope size in input units.
func (r *AdaptiveRange) Width() float64 { return r.max - r.min }

// Value returns the result of the most recent Normalize call.
func (r *AdaptiveRange) Value() float64 { return r.normalized }

// Initialized reports whether Normalize has been called since the last reset.
func (r *AdaptiveRange) Initialized() bool { return r.initialized }
