// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the input has no valid FORM/COMM header.
	ErrNotAiffFile = errors.New("not an AIFF recording")

	// ErrOnlyPCM16bitSupported is returned for 8, 24 and 32-bit recordings.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF recordings are supported")

	// ErrUnsupportedAiffLayout is returned when the header reports no
	// channels or no sample rate.
	ErrUnsupportedAiffLayout = errors.New("AIFF recording has no channels or sample rate")
)
