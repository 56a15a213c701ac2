// SPDX-License-Identifier: EPL-2.0

package heart

// Reading is a copy of the monitor outputs after one accepted sample.
type Reading struct {
	Seq             uint64  `json:"seq"`
	Raw             float64 `json:"raw"`
	Normalized      float64 `json:"normalized"`
	Amplitude       float64 `json:"amplitude"`
	AmplitudeChange float64 `json:"amplitude_change"`
	BPMChange       float64 `json:"bpm_change"`
	BPM             float64 `json:"bpm"`
	Beat            bool    `json:"beat"`
}
