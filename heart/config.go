// SPDX-License-Identifier: EPL-2.0

package heart

import "fmt"

const (
	// ThresholdLow and ThresholdHigh are the hysteresis bounds applied to the
	// normalized waveform. A cycle that never falls to ThresholdLow is ignored.
	ThresholdLow  = 0.25
	ThresholdHigh = 0.4

	// MinBPM and MaxBPM are exclusive plausibility bounds for a new estimate.
	MinBPM = 30.0
	MaxBPM = 200.0

	// DefaultBPM is reported until the first plausible beat interval.
	DefaultBPM = 60.0

	DefaultSampleRate = 100
)

// Config holds the sampling rate, the five smoothing coefficients and
// optional collaborator overrides. Coefficients are clamped to [0, 1].
type Config struct {
	SampleRate int `json:"sample_rate"`

	// MainSmoothing is the decay coefficient of the waveform envelope.
	MainSmoothing float64 `json:"main_smoothing"`

	// AmplitudeSmoothing and BPMSmoothing are the low-pass coefficients.
	AmplitudeSmoothing float64 `json:"amplitude_smoothing"`
	BPMSmoothing       float64 `json:"bpm_smoothing"`

	// AmplitudeEnvelopeSmoothing and BPMEnvelopeSmoothing are the decay
	// coefficients of the change metric envelopes.
	AmplitudeEnvelopeSmoothing float64 `json:"amplitude_envelope_smoothing"`
	BPMEnvelopeSmoothing       float64 `json:"bpm_envelope_smoothing"`

	// Nil means filter.LowPass / filter.Threshold.
	AmplitudeFilter Smoother `json:"-"`
	BPMFilter       Smoother `json:"-"`
	Detector        Detector `json:"-"`
}

// DefaultConfig returns the settings the pipeline was tuned with.
func DefaultConfig() Config {
	return Config{
		SampleRate:                 DefaultSampleRate,
		MainSmoothing:              0.1,
		AmplitudeSmoothing:         0.001,
		BPMSmoothing:               0.001,
		AmplitudeEnvelopeSmoothing: 0.001,
		BPMEnvelopeSmoothing:       0.001,
	}
}

// Validate checks the parts of the configuration that cannot be clamped.
func (c Config) Validate() error {
	if c.SampleRate <= 0 || c.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, c.SampleRate)
	}
	return nil
}
