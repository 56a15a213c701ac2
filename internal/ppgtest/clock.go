// SPDX-License-Identifier: EPL-2.0

package ppgtest

import "time"

// ManualClock only moves when told to. Millis are derived from the 64-bit
// microsecond counter, so both counters wrap independently like hardware ones.
type ManualClock struct {
	micros uint64
}

func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{micros: uint64(start.Microseconds())}
}

func (c *ManualClock) NowMicros() uint32 { return uint32(c.micros) }
func (c *ManualClock) NowMillis() uint32 { return uint32(c.micros / 1000) }

// Micros returns the full counter.
func (c *ManualClock) Micros() uint64 { return c.micros }

func (c *ManualClock) Advance(d time.Duration) {
	c.micros += uint64(d.Microseconds())
}

func (c *ManualClock) Set(d time.Duration) {
	c.micros = uint64(d.Microseconds())
}
