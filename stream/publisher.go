// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/ik5/ppgbeat/heart"
)

// DefaultWaveBatch is the number of samples per waveform message.
const DefaultWaveBatch = 10

// Conn is the publishing half of *nats.Conn.
type Conn interface {
	Publish(subj string, data []byte) error
}

// Beat is the payload of a beat event.
type Beat struct {
	Seq uint64  `json:"seq"`
	TS  int64   `json:"ts"` // unix milliseconds
	BPM float64 `json:"bpm"`
}

// Publisher fans readings out to NATS subjects. It is not safe for
// concurrent use; call it from the goroutine that drives the monitor.
type Publisher struct {
	conn   Conn
	prefix string
	batch  int

	// Now stamps beat events. Defaults to time.Now.
	Now func() time.Time

	wave []float32
	out  []byte
}

func NewPublisher(conn Conn, prefix string, batch int) (*Publisher, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if batch <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatch, batch)
	}

	return &Publisher{
		conn:   conn,
		prefix: prefix,
		batch:  batch,
		Now:    time.Now,
		wave:   make([]float32, 0, batch),
		out:    make([]byte, 4*batch),
	}, nil
}

func (p *Publisher) ReadingSubject() string { return p.prefix + ".reading" }
func (p *Publisher) BeatSubject() string    { return p.prefix + ".beat" }
func (p *Publisher) WaveSubject() string    { return p.prefix + ".wave" }

// Publish sends the reading, a beat event when r.Beat is set, and a
// waveform batch every batch readings.
func (p *Publisher) Publish(r heart.Reading) error {
	if err := p.PublishReading(r); err != nil {
		return err
	}

	if r.Beat {
		if err := p.PublishBeat(r); err != nil {
			return err
		}
	}

	p.wave = append(p.wave, float32(r.Normalized))
	if len(p.wave) >= p.batch {
		return p.Flush()
	}
	return nil
}

func (p *Publisher) PublishReading(r heart.Reading) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding reading: %w", err)
	}
	return p.publish(p.ReadingSubject(), data)
}

func (p *Publisher) PublishBeat(r heart.Reading) error {
	data, err := json.Marshal(Beat{Seq: r.Seq, TS: p.Now().UnixMilli(), BPM: r.BPM})
	if err != nil {
		return fmt.Errorf("encoding beat: %w", err)
	}
	return p.publish(p.BeatSubject(), data)
}

// Flush sends the pending waveform samples, if any.
func (p *Publisher) Flush() error {
	if len(p.wave) == 0 {
		return nil
	}

	out := p.out[:4*len(p.wave)]
	for i, v := range p.wave {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	p.wave = p.wave[:0]

	return p.publish(p.WaveSubject(), out)
}

func (p *Publisher) publish(subject string, data []byte) error {
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing %s: %w", subject, err)
	}
	return nil
}

// DecodeWave unpacks a waveform batch.
func DecodeWave(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}
