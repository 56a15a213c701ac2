// SPDX-License-Identifier: EPL-2.0

// Package ppgbeat turns a raw photoplethysmograph (PPG) reading into a
// heartbeat: a normalized waveform, a pulse amplitude, a beats-per-minute
// estimate and a per-sample beat flag.
//
// The pipeline itself lives in the heart subpackage and needs only two
// collaborators, an analog source and a clock. This package adds a
// convenience for replaying whole recordings.
//
// # Live Sensor
//
// Poll the monitor from the main loop and let its gate pick the samples:
//
//	mon, _ := heart.New(sensor, heart.NewSystemClock(), heart.DefaultConfig())
//	for {
//		if mon.Update() && mon.BeatDetected() {
//			fmt.Printf("beat, %.0f bpm\n", mon.BPM())
//		}
//	}
//
// Or drive it from a ticker:
//
//	mon.Run(ctx, func(r heart.Reading) { ... })
//
// # Recordings
//
// Recordings are decoded into a trace.Source by the formats subpackages:
//
//	// WAV
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// AIFF, MP3 and Ogg Vorbis
//	src, _ := aiff.Decoder{}.Decode(file)
//	src, _ := mp3.Decoder{}.Decode(file)
//	src, _ := vorbis.Decoder{}.Decode(file)
//
// formats.NewRegistry picks a decoder by file extension. Analyze then replays
// the recording on a virtual clock, so a ten minute trace takes milliseconds:
//
//	res, err := ppgbeat.Analyze(src, heart.DefaultConfig())
//	for _, b := range res.Beats {
//		fmt.Println(b.At, b.BPM, b.Accepted)
//	}
//
// # Writing the Waveform
//
// wav.WaveformWriter stores the normalized waveform, the amplitude and a beat
// marker as a three channel 16-bit WAV file that any audio editor can show.
//
// # Beyond the Process
//
// The stream subpackage publishes readings to NATS and to websocket clients,
// ui shows them in the terminal, and synth generates a realistic test signal
// when no sensor is attached. cmd/ppgmon ties them together.
package ppgbeat
