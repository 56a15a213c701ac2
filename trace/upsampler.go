// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ppgbeat/utils"
)

// Upsampler raises the rate of a Source with Catmull-Rom interpolation.
// The monitor gate can only drop frames, so a trace recorded below the
// monitor rate has to be upsampled before playback. Source frames pass
// through unchanged; the first and last frames are repeated to complete the
// interpolation window at the edges.
type Upsampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame, <= 1
	channels int

	// win holds source frames idx-1, idx, idx+1 and idx+2.
	win [4][]float32
	idx int
	pos float64 // offset from win[1] towards win[2], in source frames
	in  []float32

	started bool
	ended   bool
	fetched int // real frames read from src
	last    int // index of the last real frame once ended
}

// NewUpsampler wraps src so it reports and produces rate frames per second.
func NewUpsampler(src Source, rate int) (*Upsampler, error) {
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, src.SampleRate())
	}
	if rate < src.SampleRate() {
		return nil, fmt.Errorf("%w: %d Hz from %d Hz", ErrInvalidTargetRate, rate, src.SampleRate())
	}

	channels := max(src.Channels(), 1)
	u := &Upsampler{
		src:      src,
		rate:     rate,
		step:     float64(src.SampleRate()) / float64(rate),
		channels: channels,
		in:       make([]float32, channels),
		last:     -1,
	}
	for i := range u.win {
		u.win[i] = make([]float32, channels)
	}

	return u, nil
}

// AtLeast returns src unchanged when it already runs at rate or faster, and
// an Upsampler to rate otherwise.
func AtLeast(src Source, rate int) (Source, error) {
	if src.SampleRate() >= rate {
		return src, nil
	}
	return NewUpsampler(src, rate)
}

func (u *Upsampler) SampleRate() int { return u.rate }
func (u *Upsampler) Channels() int   { return u.channels }
func (u *Upsampler) BufSize() int    { return u.src.BufSize() }

func (u *Upsampler) Close() error {
	if err := u.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with whole interleaved frames. It returns io.EOF
// only with an empty read.
func (u *Upsampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%u.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !u.started {
		if err := u.start(); err != nil {
			return 0, err
		}
	}

	n := 0
	for n+u.channels <= len(dst) {
		for u.pos >= 1 {
			u.pos--
			if err := u.advance(); err != nil {
				return n, err
			}
		}
		if u.done() {
			break
		}

		t := float32(u.pos)
		for c := range u.channels {
			dst[n+c] = utils.CubicInterpolate(u.win[0][c], u.win[1][c], u.win[2][c], u.win[3][c], t)
		}
		n += u.channels
		u.pos += u.step
	}

	if n == 0 && u.done() {
		return 0, io.EOF
	}
	return n, nil
}

// done reports whether the output has passed the last real frame.
func (u *Upsampler) done() bool {
	if !u.ended {
		return false
	}
	return u.idx > u.last || (u.idx == u.last && u.pos > 0)
}

func (u *Upsampler) start() error {
	u.started = true

	if err := u.pull(u.win[1], u.win[1]); err != nil {
		return err
	}
	copy(u.win[0], u.win[1])
	if err := u.pull(u.win[2], u.win[1]); err != nil {
		return err
	}
	return u.pull(u.win[3], u.win[2])
}

// advance slides the window one source frame forward.
func (u *Upsampler) advance() error {
	oldest := u.win[0]
	u.win[0], u.win[1], u.win[2] = u.win[1], u.win[2], u.win[3]
	u.win[3] = oldest
	u.idx++

	return u.pull(u.win[3], u.win[2])
}

// pull reads the next source frame into dst, or repeats prev once the
// source is exhausted.
func (u *Upsampler) pull(dst, prev []float32) error {
	if u.ended {
		copy(dst, prev)
		return nil
	}

	n, err := u.src.ReadSamples(u.in)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if n == u.channels {
		copy(dst, u.in)
		u.fetched++
	} else {
		copy(dst, prev)
	}

	// A source returning nothing without an error is treated as finished.
	if err != nil || n < u.channels {
		u.ended = true
		u.last = u.fetched - 1
	}
	return nil
}
