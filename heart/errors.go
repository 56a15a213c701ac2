// SPDX-License-Identifier: EPL-2.0

package heart

import "errors"

var (
	// ErrInvalidSampleRate is returned for rates that would give a zero or
	// negative sampling period.
	ErrInvalidSampleRate = errors.New("sample rate must be between 1 and 1000000")

	// ErrNoSource is returned by New when the Analog source is nil.
	ErrNoSource = errors.New("analog source is nil")

	// ErrNoClock is returned by New when the Clock is nil.
	ErrNoClock = errors.New("clock is nil")
)
