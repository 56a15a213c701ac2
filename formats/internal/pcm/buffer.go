// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
)

var errNegativeOffset = errors.New("negative position")

// SeekBuffer is an in-memory io.WriteSeeker for the go-audio encoders,
// which seek back to patch chunk sizes on Close.
type SeekBuffer struct {
	data []byte
	pos  int
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	end := b.pos + len(p)
	if end > len(b.data) {
		if end > cap(b.data) {
			grown := make([]byte, end, 2*end)
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	copy(b.data[b.pos:], p)
	b.pos = end

	return len(p), nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, io.ErrUnexpectedEOF
	}

	if abs < 0 {
		return 0, errNegativeOffset
	}

	b.pos = int(abs)
	return abs, nil
}

// Bytes returns the written contents.
func (b *SeekBuffer) Bytes() []byte { return b.data }

// Reader returns a reader over the written contents.
func (b *SeekBuffer) Reader() *bytes.Reader { return bytes.NewReader(b.data) }
