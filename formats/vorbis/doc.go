// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes PPG recordings stored as Ogg Vorbis.
//
// It wraps github.com/jfreymuth/oggvorbis, which already produces float32
// samples in [-1, 1], so values are passed through unchanged.
//
//	file, _ := os.Open("finger.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
