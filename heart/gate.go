// SPDX-License-Identifier: EPL-2.0

package heart

import (
	"fmt"
	"time"
)

const maxSampleRate = 1_000_000

// Gate throttles a fast polling loop down to a fixed sampling period.
type Gate struct {
	sampleRate int
	period     uint32 // microseconds between samples
	prev       uint32
	started    bool
}

// NewGate returns a gate that accepts the first poll and then one poll per
// 1e6/sampleRate microseconds.
func NewGate(sampleRate int) (*Gate, error) {
	g := &Gate{}
	if err := g.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return g, nil
}

// SetSampleRate changes the target rate. On error the previous rate is kept.
func (g *Gate) SetSampleRate(sampleRate int) error {
	if sampleRate <= 0 || sampleRate > maxSampleRate {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}

	g.sampleRate = sampleRate
	g.period = uint32(maxSampleRate / sampleRate)
	return nil
}

// ShouldSample reports whether at least one period has elapsed since the last
// accepted timestamp, and records nowMicros when it has.
func (g *Gate) ShouldSample(nowMicros uint32) bool {
	if g.started && nowMicros-g.prev < g.period {
		return false
	}

	g.Mark(nowMicros)
	return true
}

// Mark records nowMicros as the last accepted timestamp.
func (g *Gate) Mark(nowMicros uint32) {
	g.prev = nowMicros
	g.started = true
}

func (g *Gate) SampleRate() int { return g.sampleRate }

// PeriodMicros is 1e6 / SampleRate, truncated.
func (g *Gate) PeriodMicros() uint32 { return g.period }

func (g *Gate) Period() time.Duration {
	return time.Duration(g.period) * time.Microsecond
}

// Last returns the last accepted timestamp.
func (g *Gate) Last() uint32 { return g.prev }
