// SPDX-License-Identifier: EPL-2.0

package heart

import "time"

// SystemClock reads the process monotonic clock relative to its creation.
type SystemClock struct {
	origin time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// NowMicros wraps roughly every 71 minutes.
func (c *SystemClock) NowMicros() uint32 {
	return uint32(time.Since(c.origin).Microseconds())
}

// NowMillis wraps roughly every 49 days.
func (c *SystemClock) NowMillis() uint32 {
	return uint32(time.Since(c.origin).Milliseconds())
}
