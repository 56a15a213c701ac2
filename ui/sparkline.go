// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"strings"

	"github.com/ik5/ppgbeat/utils"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// sparkline renders the most recent width values of data on one line,
// scaled between minVal and maxVal.
func sparkline(data []float64, width int, minVal, maxVal float64) string {
	if width <= 0 {
		return ""
	}
	if maxVal <= minVal {
		maxVal = minVal + 1
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var sb strings.Builder
	for _, v := range data {
		ratio := utils.Clamp((v-minVal)/(maxVal-minVal), 0, 1)
		idx := int(ratio * float64(len(sparkBlocks)-1))
		sb.WriteRune(sparkBlocks[idx])
	}
	if pad := width - len(data); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}
