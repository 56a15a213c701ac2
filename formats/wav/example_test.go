// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"

	"github.com/ik5/ppgbeat/formats/wav"
)

// Example_roundTrip records a short waveform and reads it back.
func Example_roundTrip() {
	buf := &wav.SeekBuffer{}

	w, err := wav.NewWaveformWriter(buf, 100, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		_ = w.WriteFrame(v)
	}
	if err := w.Close(); err != nil {
		fmt.Println("error:", err)
		return
	}

	src, err := wav.Decoder{}.Decode(buf.Reader())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	samples := make([]float32, 8)
	n, _ := src.ReadSamples(samples)

	fmt.Printf("rate %d Hz, %d channel, %d samples\n", src.SampleRate(), src.Channels(), n)
	fmt.Printf("first %.2f, last %.2f\n", samples[0], samples[n-1])
	// Output:
	// rate 100 Hz, 1 channel, 5 samples
	// first -1.00, last 1.00
}
