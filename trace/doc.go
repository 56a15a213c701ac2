// SPDX-License-Identifier: EPL-2.0

// Package trace replays recorded sensor traces into a heart.Monitor.
//
// A recording is any Source: decoders in the formats subpackages produce one
// from WAV, AIFF, MP3 or Ogg Vorbis files, and synth produces one from a
// model. Samples are interleaved float32 values in [-1.0, 1.0].
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Picking a Channel
//
// Pulse oximeter recordings often carry more than one LED channel. A
// ChannelReader turns any Source into a mono one, either by keeping a single
// channel or by averaging all of them:
//
//	ir := trace.NewChannelReader(src, 1)          // second channel only
//	mix := trace.NewChannelReader(src, trace.Mix) // average
//
// # Playback
//
// A Player is both the analog source and the clock of a monitor. Every Next
// call loads one frame and moves the virtual clock forward by one source
// sample period, so the monitor's gate decimates the recording to its own
// rate exactly as it would on hardware:
//
//	p, _ := trace.NewPlayer(src, trace.Mix)
//	p.Next()
//	mon, _ := heart.New(p, p, heart.DefaultConfig())
//	for p.Next() {
//	    mon.Update()
//	}
//	if err := p.Err(); err != nil {
//	    return err
//	}
//
// Samples are mapped onto the 0..1023 range of a 10-bit ADC.
//
// # Format Registry
//
//	registry := trace.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("rec/finger.wav")
package trace
