// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// createWAVFile builds a minimal canonical WAV file. data holds the raw
// sample bytes.
func createWAVFile(sampleRate, channels, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

func pcm16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// nonSeeker hides the Seek method of the wrapped reader.
type nonSeeker struct{ io.Reader }

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(100, 1, 16, pcm16(0, 16384, -16384, 32767, -32768))

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer src.Close()

	if src.SampleRate() != 100 {
		t.Errorf("SampleRate() = %d, want 100", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	want := []float32{0, 0.5, -0.5, 0.99997, -1}
	for i := range n {
		if dst[i] < want[i]-0.001 || dst[i] > want[i]+0.001 {
			t.Errorf("dst[%d] = %f, want ~%f", i, dst[i], want[i])
		}
	}
}

func TestDecoder_StereoNonSeekable(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(250, 2, 16, pcm16(100, -100, 200, -200, 300, -300))

	src, err := Decoder{}.Decode(nonSeeker{bytes.NewReader(wavData)})
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.SampleRate() != 250 {
		t.Errorf("SampleRate() = %d, want 250", src.SampleRate())
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrNotWavFile},
		{"garbage", []byte("This is not WAV data at all"), ErrNotWavFile},
		{"8-bit", createWAVFile(100, 1, 8, []byte{0, 64, 128, 255}), ErrOnlyPCM16bitSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
