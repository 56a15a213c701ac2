// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"io"
	"testing"
)

func TestSeekBuffer(t *testing.T) {
	t.Parallel()

	var b SeekBuffer
	b.Write([]byte("hello world"))

	if _, err := b.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	b.Write([]byte("J"))

	if _, err := b.Seek(-5, io.SeekEnd); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	b.Write([]byte("W"))

	if _, err := b.Seek(0, io.SeekEnd); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	b.Write([]byte("!"))

	if got := string(b.Bytes()); got != "Jello World!" {
		t.Errorf("Bytes() = %q, want %q", got, "Jello World!")
	}

	if _, err := b.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek(-1) error = nil, want error")
	}
}
