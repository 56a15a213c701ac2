// SPDX-License-Identifier: EPL-2.0

package heart

// Analog is the acquisition side: one scaled instantaneous reading per call,
// typically in the 0..1023 range of a 10-bit ADC.
type Analog interface {
	Read() float64
}

// Clock provides free running counters. Both are allowed to wrap around;
// elapsed times are computed with unsigned subtraction.
type Clock interface {
	NowMicros() uint32
	NowMillis() uint32
}

// Smoother is a single-pole low-pass filter.
type Smoother interface {
	Smooth(x float64) float64
	// SetCoefficient receives values already clamped to [0, 1].
	SetCoefficient(c float64)
	Reset()
}

// Detector turns the normalized waveform into beat pulses. Detect must return
// true at most once per low to high traversal of its input.
type Detector interface {
	Detect(x float64) bool
	Reset()
}
