// SPDX-License-Identifier: EPL-2.0

// Package wav reads PPG recordings stored as WAV files and writes the
// conditioned waveform back out.
//
// Decoding and encoding both go through github.com/go-audio/wav. Only PCM
// 16-bit files are accepted, mono or multi-channel, at any sample rate.
//
// # Decoding
//
//	file, _ := os.Open("finger.wav")
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	player, err := trace.NewPlayer(src, 0)
//
// The decoder returns a trace.Source with samples normalized to [-1, 1].
//
// # Recording the monitor output
//
// WaveformWriter stores unit-range values, one channel per signal:
//
//	out, _ := os.Create("conditioned.wav")
//	w, _ := wav.NewWaveformWriter(out, 100, wav.ReadingChans)
//	defer w.Close()
//	_ = w.WriteReading(monitor.Reading())
//
// The encoder seeks back to patch the header on Close, so the target must
// be an io.WriteSeeker. SeekBuffer provides one in memory.
package wav
