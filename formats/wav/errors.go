// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrChannelMismatch is returned when a frame does not carry one value
	// per channel of the writer.
	ErrChannelMismatch = errors.New("frame does not match channel count")
	ErrWriterClosed    = errors.New("waveform writer closed")
	ErrInvalidFormat   = errors.New("invalid sample rate or channel count")
)
