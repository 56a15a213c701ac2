// SPDX-License-Identifier: EPL-2.0

package filter

// Threshold is a hysteresis comparator. It fires when the input reaches High
// while armed, then stays quiet until the input falls back to Low.
type Threshold struct {
	low   float64
	high  float64
	fired bool
}

// NewThreshold returns an armed detector. Inverted bounds are swapped.
func NewThreshold(low, high float64) *Threshold {
	if low > high {
		low, high = high, low
	}
	return &Threshold{low: low, high: high}
}

// Detect returns true at most once per low to high traversal of the input.
func (t *Threshold) Detect(x float64) bool {
	if t.fired {
		if x <= t.low {
			t.fired = false
		}
		return false
	}

	if x >= t.high {
		t.fired = true
		return true
	}
	return false
}

// Reset re-arms the detector.
func (t *Threshold) Reset() {
	t.fired = false
}

// Bounds returns the (low, high) pair.
func (t *Threshold) Bounds() (float64, float64) {
	return t.low, t.high
}

// Armed reports whether the next crossing of High will fire.
func (t *Threshold) Armed() bool {
	return !t.fired
}
