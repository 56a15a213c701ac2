// SPDX-License-Identifier: EPL-2.0

package ppgtest

// CycleDetector ignores its input and fires on every period-th call.
type CycleDetector struct {
	period int
	calls  int
}

func NewCycleDetector(period int) *CycleDetector {
	if period < 1 {
		period = 1
	}
	return &CycleDetector{period: period}
}

func (d *CycleDetector) Detect(float64) bool {
	d.calls++
	return d.calls%d.period == 0
}

func (d *CycleDetector) Reset() { d.calls = 0 }

// TriggerDetector fires on the next Detect after Trigger and never otherwise.
type TriggerDetector struct {
	armed bool
	Seen  []float64
}

func (d *TriggerDetector) Trigger() { d.armed = true }

func (d *TriggerDetector) Detect(x float64) bool {
	d.Seen = append(d.Seen, x)
	fire := d.armed
	d.armed = false
	return fire
}

func (d *TriggerDetector) Reset() { d.armed = false }
