// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ik5/ppgbeat"
)

func printReport(w io.Writer, res *ppgbeat.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, b := range res.Beats {
		mark := ""
		if !b.Accepted {
			mark = "  ignored"
		}
		_, err := fmt.Fprintf(w, "%10s  %8s  %6.1f bpm%s\n",
			b.At.Round(time.Millisecond), b.Interval, b.BPM, mark)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d beats (%d accepted) in %s, mean %.1f bpm, last %.1f bpm\n",
		len(res.Beats), len(res.Accepted()), res.Duration.Round(time.Millisecond), res.MeanBPM, res.BPM)
	return err
}
