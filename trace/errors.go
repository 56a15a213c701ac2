// SPDX-License-Identifier: EPL-2.0

package trace

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidChannel is returned when a channel index is out of range.
	ErrInvalidChannel = errors.New("channel index out of range")

	// ErrInvalidSampleRate is returned for sources reporting a rate <= 0.
	ErrInvalidSampleRate = errors.New("source sample rate must be positive")

	// ErrEmptySource is returned when a trace ends before its first frame.
	ErrEmptySource = errors.New("trace has no samples")

	// ErrInvalidTargetRate is returned when an Upsampler would have to drop
	// frames.
	ErrInvalidTargetRate = errors.New("target rate is below the source rate")
)
