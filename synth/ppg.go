// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/ik5/ppgbeat/utils"
)

const (
	DefaultLow  = 350.0
	DefaultHigh = 650.0

	breathHz = 0.25

	// Pulse shape, in fractions of a cycle.
	systolicAt    = 0.15
	systolicWidth = 0.06
	dicroticAt    = 0.35
	dicroticWidth = 0.10
	dicroticGain  = 0.30
)

// PPG is a deterministic pulse generator. Change the exported fields
// before the first call to Next.
type PPG struct {
	Rate  int     // samples per second
	BPM   float64 // heart rate
	Low   float64 // analog level between beats
	High  float64 // analog level at the systolic peak
	Drift float64 // baseline wander amplitude, analog units
	Noise float64 // uniform noise amplitude, analog units
	Seed  uint64

	phase float64
	n     uint64
	rng   *rand.Rand
}

// New returns a clean generator at rate Hz and bpm beats per minute.
func New(rate int, bpm float64) *PPG {
	return &PPG{
		Rate: rate,
		BPM:  bpm,
		Low:  DefaultLow,
		High: DefaultHigh,
		Seed: 1,
	}
}

func (p *PPG) Validate() error {
	switch {
	case p.Rate <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidRate, p.Rate)
	case !(p.BPM > 0):
		return fmt.Errorf("%w: %v", ErrInvalidBPM, p.BPM)
	case !(p.Low < p.High):
		return fmt.Errorf("%w: %v >= %v", ErrInvalidSpan, p.Low, p.High)
	}
	return nil
}

// Shape is the unit pulse at cycle phase t in [0,1). The systolic peak is
// close to 1 and the pulse falls to ~0 before the next cycle.
func Shape(t float64) float64 {
	return bump(t, systolicAt, systolicWidth) + dicroticGain*bump(t, dicroticAt, dicroticWidth)
}

// bump is a gaussian on the unit circle so consecutive cycles join smoothly.
func bump(t, mu, sigma float64) float64 {
	d := t - mu
	d -= math.Round(d)
	z := d / sigma
	return math.Exp(-0.5 * z * z)
}

// Next returns the next sample in analog units and advances one period.
// An invalid generator returns Low.
func (p *PPG) Next() float64 {
	if p.Rate <= 0 || !(p.BPM > 0) {
		return p.Low
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))
	}

	v := p.Low + (p.High-p.Low)*Shape(p.phase)

	if p.Drift != 0 {
		t := float64(p.n) / float64(p.Rate)
		v += p.Drift * math.Sin(2*math.Pi*breathHz*t)
	}
	if p.Noise != 0 {
		v += p.Noise * (2*p.rng.Float64() - 1)
	}

	p.n++
	p.phase += p.BPM / 60 / float64(p.Rate)
	p.phase -= math.Floor(p.phase)

	return utils.Clamp(v, 0, utils.AnalogFullScale)
}

// Read implements heart.Analog.
func (p *PPG) Read() float64 { return p.Next() }

// Samples reports how many samples were generated.
func (p *PPG) Samples() uint64 { return p.n }

// Source exposes the next frames samples as a mono trace.Source.
func (p *PPG) Source(frames int) (*Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Source{gen: p, left: frames}, nil
}

// Source replays a PPG as a finite mono recording.
type Source struct {
	gen  *PPG
	left int
}

func (s *Source) SampleRate() int { return s.gen.Rate }
func (s *Source) Channels() int   { return 1 }
func (s *Source) BufSize() int    { return 1024 }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.left <= 0 {
		return 0, io.EOF
	}

	n := min(len(dst), s.left)
	for i := range n {
		dst[i] = utils.AnalogToSample(s.gen.Next())
	}
	s.left -= n

	return n, nil
}
