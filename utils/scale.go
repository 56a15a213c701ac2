// SPDX-License-Identifier: EPL-2.0

package utils

// AnalogFullScale is the top of the 10-bit analog range readings are scaled to.
const AnalogFullScale = 1023.0

// UnitToPCM16 maps a unit-range value onto the full signed 16-bit range:
// 0 becomes math.MinInt16, 1 becomes math.MaxInt16. Out of range input is
// clamped.
func UnitToPCM16(x float64) int16 {
	x = ClampUnit(x)

	v := x*65535.0 - 32768.0
	if v >= 0 {
		v += 0.5
	} else {
		v -= 0.5
	}
	return int16(v)
}

// PCM16ToUnit is the inverse of UnitToPCM16.
func PCM16ToUnit(s int16) float64 {
	return (float64(s) + 32768.0) / 65535.0
}

// SampleToAnalog maps a [-1, 1] trace sample onto the 0..AnalogFullScale range
// an ADC would report.
func SampleToAnalog(s float32) float64 {
	return Clamp((float64(s)+1)*0.5, 0, 1) * AnalogFullScale
}

// AnalogToSample is the inverse of SampleToAnalog.
func AnalogToSample(raw float64) float32 {
	return float32(Clamp(raw/AnalogFullScale, 0, 1)*2 - 1)
}
