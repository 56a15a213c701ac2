// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/ppgbeat/utils"
)

// Player steps through a Source one frame at a time and exposes the current
// frame as an analog reading and its timestamp as a clock. It satisfies
// heart.Analog and heart.Clock.
type Player struct {
	src  *ChannelReader
	rate uint64

	buf []float32
	pos int
	n   int

	frames uint64 // frames consumed so far
	value  float64
	eof    bool
	err    error
}

// NewPlayer prepares src for playback of channel (or Mix).
func NewPlayer(src Source, channel int) (*Player, error) {
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, src.SampleRate())
	}

	cr := NewChannelReader(src, channel)
	if err := cr.Validate(); err != nil {
		return nil, err
	}

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	return &Player{
		src:  cr,
		rate: uint64(src.SampleRate()),
		buf:  make([]float32, size),
	}, nil
}

// Next loads the next frame. It returns false once the trace is exhausted or
// a read fails; Err tells the two apart.
func (p *Player) Next() bool {
	for p.pos >= p.n {
		if p.eof || p.err != nil {
			return false
		}
		if !p.fill() {
			return false
		}
	}

	p.value = utils.SampleToAnalog(p.buf[p.pos])
	p.pos++
	p.frames++
	return true
}

func (p *Player) fill() bool {
	n, err := p.src.ReadSamples(p.buf)
	p.pos, p.n = 0, n

	switch {
	case errors.Is(err, io.EOF):
		p.eof = true
	case err != nil:
		p.err = fmt.Errorf("reading trace: %w", err)
		return false
	case n == 0:
		// A source returning nothing without an error would spin forever.
		p.eof = true
	}

	return n > 0
}

// Read returns the current frame on the 0..1023 analog scale.
func (p *Player) Read() float64 { return p.value }

// Elapsed is the timestamp of the current frame; the first frame is at 0.
func (p *Player) Elapsed() time.Duration {
	return time.Duration(p.micros()) * time.Microsecond
}

func (p *Player) micros() uint64 {
	if p.frames == 0 {
		return 0
	}
	return (p.frames - 1) * 1_000_000 / p.rate
}

func (p *Player) NowMicros() uint32 { return uint32(p.micros()) }
func (p *Player) NowMillis() uint32 { return uint32(p.micros() / 1000) }

// Frames counts frames returned by Next.
func (p *Player) Frames() uint64 { return p.frames }

func (p *Player) SampleRate() int { return int(p.rate) }

// Err returns the first read error other than io.EOF.
func (p *Player) Err() error { return p.err }

func (p *Player) Close() error { return p.src.Close() }
