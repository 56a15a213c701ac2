// SPDX-License-Identifier: EPL-2.0

// Package ppgtest holds deterministic fakes for the monitor's collaborators.
package ppgtest

import "time"

// Level is an analog source returning whatever value was last set.
type Level struct {
	value float64
	reads int
}

func NewLevel(v float64) *Level { return &Level{value: v} }

func (l *Level) Set(v float64) { l.value = v }

func (l *Level) Read() float64 {
	l.reads++
	return l.value
}

// Reads counts Read calls.
func (l *Level) Reads() int { return l.reads }

// Sequence returns a fixed list of values in order and then repeats it.
type Sequence struct {
	values []float64
	pos    int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Read() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// SquareWave alternates between low and high with the given period, starting
// high at t=0. Its value depends only on the clock, so the pipeline can be
// polled at any rate.
type SquareWave struct {
	Clock  *ManualClock
	Low    float64
	High   float64
	Period time.Duration
}

func (w *SquareWave) Read() float64 {
	t := time.Duration(w.Clock.Micros()) * time.Microsecond
	if t%w.Period < w.Period/2 {
		return w.High
	}
	return w.Low
}
