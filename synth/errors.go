// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidRate = errors.New("synth: sample rate must be positive")
	ErrInvalidBPM  = errors.New("synth: heart rate must be positive")
	ErrInvalidSpan = errors.New("synth: low must be below high")
)
