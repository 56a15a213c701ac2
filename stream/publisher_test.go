// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ik5/ppgbeat/heart"
)

type message struct {
	subject string
	data    []byte
}

// recorder is a Conn that keeps every message.
type recorder struct {
	msgs []message
	err  error
}

func (r *recorder) Publish(subj string, data []byte) error {
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, message{subj, append([]byte(nil), data...)})
	return nil
}

func (r *recorder) on(subject string) []message {
	var out []message
	for _, m := range r.msgs {
		if m.subject == subject {
			out = append(out, m)
		}
	}
	return out
}

func TestNewPublisher_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewPublisher(&recorder{}, "", 10); !errors.Is(err, ErrEmptyPrefix) {
		t.Errorf("NewPublisher(empty prefix) error = %v, want ErrEmptyPrefix", err)
	}
	if _, err := NewPublisher(&recorder{}, "ppg", 0); !errors.Is(err, ErrInvalidBatch) {
		t.Errorf("NewPublisher(batch 0) error = %v, want ErrInvalidBatch", err)
	}
}

func TestPublisher_Subjects(t *testing.T) {
	t.Parallel()

	p, err := NewPublisher(&recorder{}, "ppg.finger", 4)
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	if got := p.ReadingSubject(); got != "ppg.finger.reading" {
		t.Errorf("ReadingSubject() = %q", got)
	}
	if got := p.BeatSubject(); got != "ppg.finger.beat" {
		t.Errorf("BeatSubject() = %q", got)
	}
	if got := p.WaveSubject(); got != "ppg.finger.wave" {
		t.Errorf("WaveSubject() = %q", got)
	}
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	p, err := NewPublisher(rec, "ppg", 3)
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}
	p.Now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	readings := []heart.Reading{
		{Seq: 1, Normalized: 0.1, BPM: 60},
		{Seq: 2, Normalized: 0.5, BPM: 72, Beat: true},
		{Seq: 3, Normalized: 0.9, BPM: 72},
		{Seq: 4, Normalized: 0.3, BPM: 72},
	}
	for _, r := range readings {
		if err := p.Publish(r); err != nil {
			t.Fatalf("Publish(%d) error = %v", r.Seq, err)
		}
	}

	got := rec.on("ppg.reading")
	if len(got) != len(readings) {
		t.Fatalf("%d reading messages, want %d", len(got), len(readings))
	}
	var r heart.Reading
	if err := json.Unmarshal(got[1].data, &r); err != nil {
		t.Fatalf("decoding reading: %v", err)
	}
	if r != readings[1] {
		t.Errorf("reading = %+v, want %+v", r, readings[1])
	}

	beats := rec.on("ppg.beat")
	if len(beats) != 1 {
		t.Fatalf("%d beat messages, want 1", len(beats))
	}
	var b Beat
	if err := json.Unmarshal(beats[0].data, &b); err != nil {
		t.Fatalf("decoding beat: %v", err)
	}
	if b != (Beat{Seq: 2, TS: 1_700_000_000_000, BPM: 72}) {
		t.Errorf("beat = %+v", b)
	}

	waves := rec.on("ppg.wave")
	if len(waves) != 1 {
		t.Fatalf("%d wave messages before flush, want 1", len(waves))
	}
	if w := DecodeWave(waves[0].data); len(w) != 3 || w[0] != 0.1 || w[2] != 0.9 {
		t.Errorf("first wave batch = %v, want [0.1 0.5 0.9]", w)
	}

	if err := p.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	waves = rec.on("ppg.wave")
	if len(waves) != 2 {
		t.Fatalf("%d wave messages after flush, want 2", len(waves))
	}
	if w := DecodeWave(waves[1].data); len(w) != 1 || w[0] != 0.3 {
		t.Errorf("flushed wave batch = %v, want [0.3]", w)
	}

	if err := p.Flush(); err != nil {
		t.Errorf("empty Flush() error = %v", err)
	}
	if len(rec.on("ppg.wave")) != 2 {
		t.Error("empty Flush() published a message")
	}
}

func TestPublisher_ConnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p, err := NewPublisher(&recorder{err: boom}, "ppg", 1)
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	if err := p.Publish(heart.Reading{}); !errors.Is(err, boom) {
		t.Errorf("Publish() error = %v, want wrapped boom", err)
	}
}

func TestDecodeWave_IgnoresTrailingBytes(t *testing.T) {
	t.Parallel()

	if got := DecodeWave([]byte{0, 0, 128, 63, 1, 2}); len(got) != 1 || got[0] != 1 {
		t.Errorf("DecodeWave() = %v, want [1]", got)
	}
}
