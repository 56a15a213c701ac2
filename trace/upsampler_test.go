// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/ppgbeat/internal/ppgtest"
)

// readAll drains src with reads of size values.
func readAll(t *testing.T, src Source, size int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, size)
	for range 100000 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func ramp(rate, frames int) *ppgtest.MockSource {
	return ppgtest.NewMockSource(rate, 1, frames, func(frame, _ int) float32 {
		return float32(frame) / 100
	})
}

func TestUpsampler_Ramp(t *testing.T) {
	t.Parallel()

	const frames = 20
	u, err := NewUpsampler(ramp(10, frames), 40)
	if err != nil {
		t.Fatalf("NewUpsampler() error = %v", err)
	}
	if u.SampleRate() != 40 || u.Channels() != 1 {
		t.Fatalf("format = %d Hz, %d ch", u.SampleRate(), u.Channels())
	}

	got := readAll(t, u, 16)

	// Four outputs per source interval plus the final frame.
	if want := (frames-1)*4 + 1; len(got) != want {
		t.Fatalf("got %d values, want %d", len(got), want)
	}

	for k, v := range got {
		pos := float64(k) / 4
		if k%4 == 0 && v != float32(pos)/100 {
			t.Errorf("out[%d] = %v, want source frame %v exactly", k, v, float32(pos)/100)
		}
		// Catmull-Rom reproduces a line wherever the window is all real frames.
		if pos >= 1 && pos <= frames-2 && math.Abs(float64(v)-pos/100) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", k, v, pos/100)
		}
	}
}

func TestUpsampler_ReadSizes(t *testing.T) {
	t.Parallel()

	pulse := func() *ppgtest.MockSource { return ppgtest.NewPulseSource(50, 200, 60, 0.5) }

	u1, _ := NewUpsampler(pulse(), 100)
	u2, _ := NewUpsampler(pulse(), 100)

	small := readAll(t, u1, 1)
	large := readAll(t, u2, 4096)

	if len(small) != len(large) || len(small) != 399 {
		t.Fatalf("lengths = %d and %d, want 399", len(small), len(large))
	}
	for i := range small {
		if small[i] != large[i] {
			t.Fatalf("value %d differs: %v vs %v", i, small[i], large[i])
		}
	}
}

func TestUpsampler_Stereo(t *testing.T) {
	t.Parallel()

	u, err := NewUpsampler(stereoSource(10), 400)
	if err != nil {
		t.Fatalf("NewUpsampler() error = %v", err)
	}

	if _, err := u.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3 values) error = %v, want ErrInvalidDstSize", err)
	}

	got := readAll(t, u, 64)
	if want := 2 * ((10-1)*4 + 1); len(got) != want {
		t.Fatalf("got %d values, want %d", len(got), want)
	}
	for i := 0; i < len(got); i += 2 {
		if math.Abs(float64(got[i]-0.2)) > 1e-6 || math.Abs(float64(got[i+1]+0.6)) > 1e-6 {
			t.Fatalf("frame %d = (%v, %v), want (0.2, -0.6)", i/2, got[i], got[i+1])
		}
	}
}

func TestUpsampler_Edges(t *testing.T) {
	t.Parallel()

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		u, _ := NewUpsampler(ppgtest.NewConstantSource(10, 1, 0, 0), 20)
		n, err := u.ReadSamples(make([]float32, 8))
		if n != 0 || !errors.Is(err, io.EOF) {
			t.Errorf("ReadSamples() = %d, %v, want 0, io.EOF", n, err)
		}
	})

	t.Run("single frame", func(t *testing.T) {
		t.Parallel()

		u, _ := NewUpsampler(ppgtest.NewConstantSource(10, 1, 1, 0.3), 20)
		got := readAll(t, u, 8)
		if len(got) != 1 || got[0] != 0.3 {
			t.Errorf("got %v, want [0.3]", got)
		}
	})

	t.Run("same rate passes through", func(t *testing.T) {
		t.Parallel()

		u, _ := NewUpsampler(ramp(10, 5), 10)
		got := readAll(t, u, 8)
		want := []float32{0, 0.01, 0.02, 0.03, 0.04}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("read error", func(t *testing.T) {
		t.Parallel()

		src := &failingSource{MockSource: ppgtest.NewConstantSource(10, 1, 100, 0), after: 3}
		u, _ := NewUpsampler(src, 20)

		var err error
		for range 100 {
			if _, err = u.ReadSamples(make([]float32, 2)); err != nil {
				break
			}
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("error = %v, want io.ErrUnexpectedEOF", err)
		}
	})
}

func TestNewUpsampler_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewUpsampler(ramp(100, 10), 50); !errors.Is(err, ErrInvalidTargetRate) {
		t.Errorf("downsampling error = %v, want ErrInvalidTargetRate", err)
	}
	if _, err := NewUpsampler(ramp(0, 10), 50); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero source rate error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestAtLeast(t *testing.T) {
	t.Parallel()

	src := ramp(200, 10)

	got, err := AtLeast(src, 100)
	if err != nil || got != Source(src) {
		t.Errorf("AtLeast(200 Hz, 100) = %v, %v, want the source itself", got, err)
	}

	got, err = AtLeast(src, 400)
	if err != nil {
		t.Fatalf("AtLeast(200 Hz, 400) error = %v", err)
	}
	if _, ok := got.(*Upsampler); !ok || got.SampleRate() != 400 {
		t.Errorf("AtLeast(200 Hz, 400) = %T at %d Hz", got, got.SampleRate())
	}

	if err := got.Close(); err != nil || !src.Closed() {
		t.Errorf("Close() = %v, source closed %v", err, src.Closed())
	}
}

// A 50 Hz recording upsampled for a 100 Hz monitor yields one sample per
// 10ms instead of every 20ms.
func TestUpsampler_DrivesPlayer(t *testing.T) {
	t.Parallel()

	src, err := AtLeast(ppgtest.NewPulseSource(50, 50*20, 60, 0.5), 100)
	if err != nil {
		t.Fatal(err)
	}

	p, err := NewPlayer(src, Mix)
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	for p.Next() {
		frames++
	}
	if frames != 1999 {
		t.Errorf("frames = %d, want 1999", frames)
	}
	if p.Err() != nil {
		t.Errorf("Err() = %v", p.Err())
	}
}
