// SPDX-License-Identifier: EPL-2.0

package heart

import (
	"time"

	"github.com/ik5/ppgbeat/filter"
	"github.com/ik5/ppgbeat/utils"
)

// Monitor runs the PPG conditioning pipeline. Create it with New.
type Monitor struct {
	src   Analog
	clock Clock
	gate  Gate

	mainRange      filter.AdaptiveRange
	amplitudeRange filter.AdaptiveRange
	bpmRange       filter.AdaptiveRange

	amplitudeFilter Smoother
	bpmFilter       Smoother
	detector        Detector

	mainSmoothing              float64
	amplitudeSmoothing         float64
	bpmSmoothing               float64
	amplitudeEnvelopeSmoothing float64
	bpmEnvelopeSmoothing       float64

	beatTimerStart uint32 // ms
	lastInterval   uint32 // ms, at the most recent beat
	lastAccepted   bool

	raw             float64
	normalized      float64
	amplitude       float64
	amplitudeChange float64
	bpmChange       float64
	bpm             float64
	beat            bool
	seq             uint64
}

// New builds a monitor and runs one pipeline pass so every output is defined.
func New(src Analog, clock Clock, cfg Config) (*Monitor, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if clock == nil {
		return nil, ErrNoClock
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Monitor{
		src:             src,
		clock:           clock,
		amplitudeFilter: cfg.AmplitudeFilter,
		bpmFilter:       cfg.BPMFilter,
		detector:        cfg.Detector,
	}
	if m.amplitudeFilter == nil {
		m.amplitudeFilter = filter.NewLowPass(0)
	}
	if m.bpmFilter == nil {
		m.bpmFilter = filter.NewLowPass(0)
	}
	if m.detector == nil {
		m.detector = filter.NewThreshold(ThresholdLow, ThresholdHigh)
	}

	// Validated above.
	_ = m.gate.SetSampleRate(cfg.SampleRate)

	m.SetMainSmoothing(cfg.MainSmoothing)
	m.SetAmplitudeSmoothing(cfg.AmplitudeSmoothing)
	m.SetBPMSmoothing(cfg.BPMSmoothing)
	m.SetAmplitudeEnvelopeSmoothing(cfg.AmplitudeEnvelopeSmoothing)
	m.SetBPMEnvelopeSmoothing(cfg.BPMEnvelopeSmoothing)

	m.Reset()

	return m, nil
}

// Reset clears every stage, restarts the beat timer and the gate from the
// current clock, and performs one pipeline pass. Smoothing settings are kept.
func (m *Monitor) Reset() {
	m.mainRange.Reset()
	m.amplitudeRange.Reset()
	m.bpmRange.Reset()
	m.amplitudeFilter.Reset()
	m.bpmFilter.Reset()
	m.detector.Reset()

	m.raw, m.normalized, m.amplitude = 0, 0, 0
	m.amplitudeChange, m.bpmChange = 0, 0
	m.seq = 0

	m.beatTimerStart = m.clock.NowMillis()
	m.lastInterval, m.lastAccepted = 0, false
	m.bpm = DefaultBPM
	m.beat = false

	m.gate.Mark(m.clock.NowMicros())

	m.Sample()
}

// Update runs the pipeline if a sampling period has elapsed since the last
// accepted sample. It reports whether a sample was taken.
func (m *Monitor) Update() bool {
	if !m.gate.ShouldSample(m.clock.NowMicros()) {
		return false
	}

	m.Sample()
	return true
}

// Sample runs one pass of the pipeline unconditionally.
func (m *Monitor) Sample() {
	m.raw = m.src.Read()

	m.normalized = m.mainRange.Normalize(m.raw)
	// Amplitude comes from the envelope before it decays.
	m.amplitude = m.mainRange.Width()
	m.mainRange.Decay(m.mainSmoothing)

	amplitudeLP := m.amplitudeFilter.Smooth(m.amplitude)
	bpmLP := m.bpmFilter.Smooth(m.bpm)

	m.amplitudeChange = m.amplitudeRange.Normalize(amplitudeLP)
	m.amplitudeRange.Decay(m.amplitudeEnvelopeSmoothing)

	m.bpmChange = m.bpmRange.Normalize(bpmLP)
	m.bpmRange.Decay(m.bpmEnvelopeSmoothing)

	m.beat = m.detector.Detect(m.normalized)
	if m.beat {
		m.recordBeat(m.clock.NowMillis())
	}

	m.seq++
}

// recordBeat restarts the beat timer and keeps the interval as the new BPM
// when it is plausible. The timer restarts even for rejected intervals; a run
// of noise beats therefore never updates BPM.
func (m *Monitor) recordBeat(nowMillis uint32) {
	elapsed := nowMillis - m.beatTimerStart
	m.beatTimerStart = nowMillis
	m.lastInterval, m.lastAccepted = elapsed, false

	if elapsed == 0 {
		return
	}

	candidate := 60000.0 / float64(elapsed)
	if candidate > MinBPM && candidate < MaxBPM {
		m.bpm = candidate
		m.lastAccepted = true
	}
}

// LastBeat returns the interval measured at the most recent beat and
// whether it was plausible enough to become the BPM estimate.
func (m *Monitor) LastBeat() (interval time.Duration, accepted bool) {
	return time.Duration(m.lastInterval) * time.Millisecond, m.lastAccepted
}

// SetSampleRate changes the gate period. The previous rate is kept on error.
func (m *Monitor) SetSampleRate(rate int) error {
	return m.gate.SetSampleRate(rate)
}

// SetMainSmoothing sets how fast the waveform envelope relaxes.
func (m *Monitor) SetMainSmoothing(c float64) {
	m.mainSmoothing = utils.ClampUnit(c)
}

// SetAmplitudeSmoothing sets the amplitude low-pass coefficient.
func (m *Monitor) SetAmplitudeSmoothing(c float64) {
	m.amplitudeSmoothing = utils.ClampUnit(c)
	m.amplitudeFilter.SetCoefficient(m.amplitudeSmoothing)
}

// SetBPMSmoothing sets the BPM low-pass coefficient.
func (m *Monitor) SetBPMSmoothing(c float64) {
	m.bpmSmoothing = utils.ClampUnit(c)
	m.bpmFilter.SetCoefficient(m.bpmSmoothing)
}

func (m *Monitor) SetAmplitudeEnvelopeSmoothing(c float64) {
	m.amplitudeEnvelopeSmoothing = utils.ClampUnit(c)
}

func (m *Monitor) SetBPMEnvelopeSmoothing(c float64) {
	m.bpmEnvelopeSmoothing = utils.ClampUnit(c)
}

// Config returns the current settings. Collaborator fields are left nil.
func (m *Monitor) Config() Config {
	return Config{
		SampleRate:                 m.gate.SampleRate(),
		MainSmoothing:              m.mainSmoothing,
		AmplitudeSmoothing:         m.amplitudeSmoothing,
		BPMSmoothing:               m.bpmSmoothing,
		AmplitudeEnvelopeSmoothing: m.amplitudeEnvelopeSmoothing,
		BPMEnvelopeSmoothing:       m.bpmEnvelopeSmoothing,
	}
}

func (m *Monitor) SampleRate() int { return m.gate.SampleRate() }

// Normalized returns the waveform mapped into [0, 1].
func (m *Monitor) Normalized() float64 { return m.normalized }

// Amplitude returns the waveform envelope width in raw units.
func (m *Monitor) Amplitude() float64 { return m.amplitude }

// AmplitudeChange returns the smoothed amplitude normalized against its own
// slowly adapting envelope.
func (m *Monitor) AmplitudeChange() float64 { return m.amplitudeChange }

// BPMChange is AmplitudeChange for the BPM estimate.
func (m *Monitor) BPMChange() float64 { return m.bpmChange }

// BeatDetected is true only for the sample on which a beat fired.
func (m *Monitor) BeatDetected() bool { return m.beat }

func (m *Monitor) BPM() float64 { return m.bpm }

// Raw returns the last reading truncated to an integer.
func (m *Monitor) Raw() int { return int(m.raw) }

func (m *Monitor) RawReading() float64 { return m.raw }

// Samples counts pipeline passes since the last Reset, including the one
// Reset performs.
func (m *Monitor) Samples() uint64 { return m.seq }

// Reading returns a snapshot of the outputs.
func (m *Monitor) Reading() Reading {
	return Reading{
		Seq:             m.seq,
		Raw:             m.raw,
		Normalized:      m.normalized,
		Amplitude:       m.amplitude,
		AmplitudeChange: m.amplitudeChange,
		BPMChange:       m.bpmChange,
		BPM:             m.bpm,
		Beat:            m.beat,
	}
}
