// SPDX-License-Identifier: EPL-2.0

package heart

import (
	"context"
	"time"
)

// Run drives Sample from a ticker at the configured sampling period until ctx
// is done, handing each result to onSample when it is not nil. The gate is not
// consulted. Run returns ctx.Err().
func (m *Monitor) Run(ctx context.Context, onSample func(Reading)) error {
	ticker := time.NewTicker(m.gate.Period())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Sample()
			if onSample != nil {
				onSample(m.Reading())
			}
		}
	}
}
