// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader serves 16-bit little-endian PCM the way gomp3.Decoder
// does. chunk limits each Read to that many bytes when positive.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	chunk      int
	failWith   error
}

func newMockMP3Reader(rate int, samples ...int16) *mockMP3Reader {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: rate, data: data}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}

	n := len(buf)
	if m.chunk > 0 && n > m.chunk {
		n = m.chunk
	}
	n = copy(buf[:n], m.data)
	m.data = m.data[n:]

	return n, nil
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"garbage", []byte("This is not MP3 data")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockMP3Reader(8000), sampleRate: 8000, buf: make([]byte, 8192)}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	src := &source{dec: newMockMP3Reader(8000, samples...), sampleRate: 8000}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, s := range samples {
		if want := float32(s) / 32768.0; dst[i] != want {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want)
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

// A sample split across two reads must be reassembled, not dropped.
func TestSource_ReadSamples_OddByteReads(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, -1000, 2000, -2000, 3000, -3000}
	dec := newMockMP3Reader(8000, samples...)
	dec.chunk = 3

	src := &source{dec: dec, sampleRate: 8000}

	var got []float32
	dst := make([]float32, 4)
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float32(s) / 32768.0; got[i] != want {
			t.Errorf("sample %d = %f, want %f", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_EmptyAndError(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockMP3Reader(8000, 1, 2), sampleRate: 8000}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}

	dec := newMockMP3Reader(8000)
	dec.failWith = io.ErrUnexpectedEOF
	src = &source{dec: dec, sampleRate: 8000}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 4096)
	for i := range samples {
		samples[i] = int16(i * 7)
	}
	data := newMockMP3Reader(44100, samples...).data
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := &source{dec: &mockMP3Reader{sampleRate: 44100, data: data}, sampleRate: 44100, buf: make([]byte, 8192)}
		_, _ = src.ReadSamples(dst)
	}
}
