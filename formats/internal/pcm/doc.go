// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to trace.Source.
//
// Both the WAV and AIFF readers of go-audio hand out samples through
// PCMBuffer with a fixed bit depth. Source normalizes them into [-1,1]
// float32 values so the rest of the pipeline never sees integer PCM.
package pcm
