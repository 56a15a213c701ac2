// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/ppgbeat/heart"
	"github.com/ik5/ppgbeat/utils"
)

const (
	bitDepth     = 16
	flushFrames  = 1024
	ReadingChans = 3
)

// WaveformWriter records unit-range values as a 16-bit PCM WAV file, one
// value per channel per frame. 0 maps to the most negative sample and 1 to
// the most positive one.
type WaveformWriter struct {
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	frames   int
	closed   bool
}

func NewWaveformWriter(w io.WriteSeeker, sampleRate, channels int) (*WaveformWriter, error) {
	if sampleRate < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: rate %d, channels %d", ErrInvalidFormat, sampleRate, channels)
	}

	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return &WaveformWriter{
		enc: wav.NewEncoder(w, sampleRate, bitDepth, channels, pcmFormat),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 0, flushFrames*channels),
			SourceBitDepth: bitDepth,
		},
		channels: channels,
	}, nil
}

// WriteFrame appends one frame. len(values) must equal the channel count.
func (w *WaveformWriter) WriteFrame(values ...float64) error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(values) != w.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(values), w.channels)
	}

	for _, v := range values {
		w.buf.Data = append(w.buf.Data, int(utils.UnitToPCM16(v)))
	}
	w.frames++

	if len(w.buf.Data) >= flushFrames*w.channels {
		return w.flush()
	}
	return nil
}

// WriteReading stores the normalized waveform, the amplitude as a fraction
// of the analog full scale and a beat marker. The writer must have
// ReadingChans channels.
func (w *WaveformWriter) WriteReading(r heart.Reading) error {
	beat := 0.0
	if r.Beat {
		beat = 1
	}
	return w.WriteFrame(r.Normalized, r.Amplitude/utils.AnalogFullScale, beat)
}

// Frames reports how many frames were accepted so far.
func (w *WaveformWriter) Frames() int { return w.frames }

func (w *WaveformWriter) flush() error {
	if len(w.buf.Data) == 0 {
		return nil
	}
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav frames: %w", err)
	}
	w.buf.Data = w.buf.Data[:0]
	return nil
}

// Close flushes pending frames and finalizes the header. Closing twice is
// a no-op.
func (w *WaveformWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.flush(); err != nil {
		return err
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
