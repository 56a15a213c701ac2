// SPDX-License-Identifier: EPL-2.0

package ppgbeat

import (
	"fmt"
	"time"

	"github.com/ik5/ppgbeat/heart"
	"github.com/ik5/ppgbeat/trace"
)

// Beat is one detected heartbeat in a replayed recording.
type Beat struct {
	// At is the recording timestamp of the sample the beat fired on.
	At time.Duration `json:"at"`

	// Interval is the time since the previous beat, or since the start of
	// the recording for the first one.
	Interval time.Duration `json:"interval"`

	// BPM is the monitor estimate after the beat. It only changes when
	// Accepted is true.
	BPM      float64 `json:"bpm"`
	Accepted bool    `json:"accepted"`
}

// Result summarizes a recording replayed by Analyze.
type Result struct {
	Beats []Beat `json:"beats"`

	// Samples counts monitor passes, including the one New performs.
	Samples  int           `json:"samples"`
	Duration time.Duration `json:"duration"`

	// BPM is the estimate at the end of the recording.
	BPM float64 `json:"bpm"`

	// MeanBPM averages the estimates of accepted beats. It is zero when no
	// beat was accepted.
	MeanBPM float64 `json:"mean_bpm"`
}

// Accepted returns the beats whose interval became the BPM estimate.
func (r *Result) Accepted() []Beat {
	out := make([]Beat, 0, len(r.Beats))
	for _, b := range r.Beats {
		if b.Accepted {
			out = append(out, b)
		}
	}
	return out
}

// Analyze replays src, with its channels mixed down, through a Monitor built
// from cfg. The monitor gate decimates the recording to cfg.SampleRate, so a
// 500 Hz trace analysed at 100 Hz feeds every fifth frame. A recording slower
// than cfg.SampleRate is upsampled first.
//
// src is not closed.
func Analyze(src trace.Source, cfg heart.Config) (*Result, error) {
	return AnalyzeChannel(src, trace.Mix, cfg)
}

// AnalyzeChannel is Analyze for a single channel of src.
func AnalyzeChannel(src trace.Source, channel int, cfg heart.Config) (*Result, error) {
	// The gate only drops frames; slower recordings are interpolated up.
	src, err := trace.AtLeast(src, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("preparing trace: %w", err)
	}

	p, err := trace.NewPlayer(src, channel)
	if err != nil {
		return nil, fmt.Errorf("preparing trace: %w", err)
	}

	// The monitor samples once on creation, so it needs a frame first.
	if !p.Next() {
		if err := p.Err(); err != nil {
			return nil, err
		}
		return nil, trace.ErrEmptySource
	}

	mon, err := heart.New(p, p, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating monitor: %w", err)
	}

	res := &Result{}
	var sum float64

	for p.Next() {
		if !mon.Update() || !mon.BeatDetected() {
			continue
		}

		interval, accepted := mon.LastBeat()
		res.Beats = append(res.Beats, Beat{
			At:       p.Elapsed(),
			Interval: interval,
			BPM:      mon.BPM(),
			Accepted: accepted,
		})
		if accepted {
			sum += mon.BPM()
		}
	}
	if err := p.Err(); err != nil {
		return nil, err
	}

	res.Samples = int(mon.Samples())
	res.Duration = p.Elapsed()
	res.BPM = mon.BPM()
	if n := len(res.Accepted()); n > 0 {
		res.MeanBPM = sum / float64(n)
	}

	return res, nil
}
