// SPDX-License-Identifier: EPL-2.0

package ppgtest

import (
	"io"
	"math"
)

// MockSource generates a trace for testing.
// It implements the trace.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32
	closed      bool
}

// NewMockSource creates a source of totalFrames frames whose values come from
// waveform(frame, channel).
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// NewPulseSource creates a mono trace that looks like a clean PPG at bpm: a
// raised cosine pulse per beat, peak-to-peak amplitude in [-amp, amp].
func NewPulseSource(sampleRate, totalFrames int, bpm float64, amp float32) *MockSource {
	framesPerBeat := float64(sampleRate) * 60 / bpm
	return NewMockSource(sampleRate, 1, totalFrames, func(frame int, _ int) float32 {
		phase := math.Mod(float64(frame), framesPerBeat) / framesPerBeat
		return amp * float32(-math.Cos(2*math.Pi*phase))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	n := frames * m.channels

	if m.generated >= m.totalFrames {
		return n, io.EOF
	}
	return n, nil
}
