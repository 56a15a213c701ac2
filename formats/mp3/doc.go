// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes PPG recordings that were captured through a sound
// card and saved as MP3.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always emits
// interleaved 16-bit stereo. Pick the channel that carries the sensor, or
// trace.Mix to average both:
//
//	file, _ := os.Open("finger.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	player, err := trace.NewPlayer(src, 0)
//
// Lossy compression smears sharp pulse edges. Prefer WAV for recordings
// meant for analysis.
package mp3
