// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PPG recordings stored as AIFF files.
//
// It wraps github.com/go-audio/aiff. AIFF differs from WAV in byte order
// and header layout only; the samples come out the same way, as a
// trace.Source normalized to [-1, 1]. Only 16-bit PCM is accepted.
//
//	file, _ := os.Open("finger.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF file
//	}
package aiff
