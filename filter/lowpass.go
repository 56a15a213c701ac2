// SPDX-License-Identifier: EPL-2.0

package filter

import "github.com/ik5/ppgbeat/utils"

// LowPass is a single-pole exponential smoother: v += (x - v) * coefficient.
// The first sample after construction or Reset seeds the output.
type LowPass struct {
	coefficient float64
	value       float64
	seeded      bool
}

// NewLowPass returns a smoother with the given coefficient, clamped to [0, 1].
// 0 freezes the output at its seed, 1 passes input through unchanged.
func NewLowPass(coefficient float64) *LowPass {
	return &LowPass{coefficient: utils.ClampUnit(coefficient)}
}

// Smooth feeds x through the filter and returns the new output.
func (lp *LowPass) Smooth(x float64) float64 {
	if !lp.seeded {
		lp.seeded = true
		lp.value = x
		return lp.value
	}

	lp.value += (x - lp.value) * lp.coefficient
	return lp.value
}

// SetCoefficient updates the smoothing coefficient; the state is kept.
func (lp *LowPass) SetCoefficient(c float64) {
	lp.coefficient = utils.ClampUnit(c)
}

func (lp *LowPass) Coefficient() float64 { return lp.coefficient }

// Value returns the last output without feeding a new sample.
func (lp *LowPass) Value() float64 { return lp.value }

// Reset clears the filter state. The coefficient is kept.
func (lp *LowPass) Reset() {
	lp.value = 0
	lp.seeded = false
}
