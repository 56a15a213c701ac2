// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrUnsupportedLayout is returned when the stream header reports no
// channels or no sample rate.
var ErrUnsupportedLayout = errors.New("vorbis stream has no channels or sample rate")
