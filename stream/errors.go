// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrEmptyPrefix  = errors.New("stream: subject prefix must not be empty")
	ErrInvalidBatch = errors.New("stream: wave batch must be positive")
)
