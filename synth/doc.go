// SPDX-License-Identifier: EPL-2.0

// Package synth generates a PPG-like waveform for demos and tests.
//
// Each cardiac cycle is a sharp systolic peak followed by a lower dicrotic
// shoulder, placed between Low and High in analog units. A slow baseline
// drift stands in for breathing and a seeded uniform noise for sensor
// jitter. The output is not physiologically accurate; it only has to look
// enough like a finger sensor to exercise the monitor.
//
//	ppg := synth.New(100, 72)
//	m, _ := heart.New(ppg, clock, heart.DefaultConfig())
//
// A PPG is not safe for concurrent use.
package synth
