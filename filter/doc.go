// SPDX-License-Identifier: EPL-2.0

// Package filter provides the O(1)-state stream transformers used to condition
// a photoplethysmograph (PPG) reading.
//
// # AdaptiveRange
//
// AdaptiveRange tracks a running [min, max] envelope and normalizes every
// sample into [0, 1]. The envelope expands instantly when a new extreme shows
// up and only contracts when Decay is called:
//
//	var r filter.AdaptiveRange
//	for _, x := range samples {
//	    v := r.Normalize(x) // v in [0, 1]
//	    r.Decay(0.1)        // relax the envelope toward x
//	}
//
// Calling Normalize followed by Decay on every tick gives a self-calibrating
// automatic gain control: peaks are never missed and a single outlier does not
// saturate the output forever.
//
// # LowPass
//
// LowPass is a single-pole exponential smoother:
//
//	lp := filter.NewLowPass(0.01)
//	y := lp.Smooth(x)
//
// # Threshold
//
// Threshold is a hysteresis comparator that fires once per low to high
// traversal:
//
//	th := filter.NewThreshold(0.25, 0.4)
//	if th.Detect(v) {
//	    // beat
//	}
//
// All types are single-writer and hold no locks. None of them allocate after
// construction.
package filter
