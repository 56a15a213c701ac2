// SPDX-License-Identifier: EPL-2.0

// Package heart extracts a heartbeat from a drifting photoplethysmograph (PPG)
// reading without any calibration step.
//
// A Monitor pulls one raw value from an Analog source per accepted sample and
// runs it through a fixed pipeline:
//
//	raw -> AdaptiveRange -> normalized waveform -> Threshold -> beat -> BPM
//	         |
//	         +-> envelope width (amplitude) -> LowPass -> AdaptiveRange -> amplitude change
//	previous BPM -> LowPass -> AdaptiveRange -> BPM change
//
// BPM is recomputed from the time between consecutive beats and only accepted
// when it lies strictly between MinBPM and MaxBPM. An implausible interval is
// dropped but still restarts the beat timer, so a burst of noise beats leaves
// the last good BPM in place until a plausible beat shows up.
//
// # Polling
//
// On a host with a fast main loop call Update as often as possible; a Gate lets
// the pipeline run only once per sampling period:
//
//	mon, err := heart.New(adc, heart.NewSystemClock(), heart.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	for {
//	    if mon.Update() && mon.BeatDetected() {
//	        fmt.Printf("%.1f bpm\n", mon.BPM())
//	    }
//	}
//
// Event driven hosts can call Sample from their own periodic timer instead, or
// let Run drive it from a time.Ticker.
//
// # Collaborators
//
// The monitor depends on four small interfaces: Analog (the ADC), Clock
// (free running micro and millisecond counters), Smoother (the amplitude and
// BPM low-pass filters) and Detector (the beat comparator). Defaults from
// package filter are used unless Config supplies others, which makes the whole
// pipeline testable with deterministic fakes.
//
// # Concurrency
//
// A Monitor has exactly one writer. It holds no locks and must not be shared
// between goroutines without external synchronization.
package heart
