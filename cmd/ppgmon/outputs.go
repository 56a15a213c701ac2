// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ik5/ppgbeat/config"
	"github.com/ik5/ppgbeat/formats/wav"
	"github.com/ik5/ppgbeat/heart"
	"github.com/ik5/ppgbeat/stream"
)

const uiBuffer = 64

// outputs fans every monitor reading out to the enabled sinks.
type outputs struct {
	logBeats bool

	nc  *nats.Conn
	pub *stream.Publisher

	hub *stream.Hub
	srv *http.Server

	wavFile *os.File
	wav     *wav.WaveformWriter

	ui chan heart.Reading
}

func openOutputs(opts options, cfg config.Config) (*outputs, error) {
	out := &outputs{logBeats: !opts.tui}

	if cfg.NATS.URL != "" {
		nc, err := stream.Connect(cfg.NATS.URL, "ppgmon")
		if err != nil {
			return nil, err
		}
		out.nc = nc

		pub, err := stream.NewPublisher(nc, cfg.NATS.Prefix, cfg.NATS.WaveBatch)
		if err != nil {
			out.Close()
			return nil, err
		}
		out.pub = pub
	}

	if cfg.Web.Addr != "" {
		out.hub = stream.NewHub()
		out.srv = serveHub(cfg.Web.Addr, out.hub)
	}

	if opts.wavOut != "" {
		f, err := os.Create(opts.wavOut)
		if err != nil {
			out.Close()
			return nil, fmt.Errorf("creating waveform file: %w", err)
		}
		out.wavFile = f

		w, err := wav.NewWaveformWriter(f, cfg.Monitor.SampleRate, wav.ReadingChans)
		if err != nil {
			out.Close()
			return nil, err
		}
		out.wav = w
	}

	if opts.tui {
		out.ui = make(chan heart.Reading, uiBuffer)
	}

	return out, nil
}

// emit forwards the current monitor outputs. at is the time since the
// monitor started.
func (o *outputs) emit(at time.Duration, mon *heart.Monitor) error {
	r := mon.Reading()

	if r.Beat && o.logBeats {
		interval, accepted := mon.LastBeat()
		if accepted {
			log.Printf("ppgmon: beat at %s, interval %s, %.1f bpm", at.Round(time.Millisecond), interval, r.BPM)
		} else {
			log.Printf("ppgmon: beat at %s, interval %s ignored", at.Round(time.Millisecond), interval)
		}
	}

	if o.pub != nil {
		if err := o.pub.Publish(r); err != nil {
			return err
		}
	}
	if o.hub != nil {
		if err := o.hub.Broadcast(r); err != nil {
			return err
		}
	}
	if o.wav != nil {
		if err := o.wav.WriteReading(r); err != nil {
			return err
		}
	}
	if o.ui != nil {
		// A slow terminal loses frames rather than stalling the monitor.
		select {
		case o.ui <- r:
		default:
		}
	}

	return nil
}

// Close flushes and releases every sink. The ui channel is left open; the
// goroutine driving emit owns it.
func (o *outputs) Close() error {
	var errs []error

	if o.pub != nil {
		errs = append(errs, o.pub.Flush())
	}
	if o.nc != nil {
		errs = append(errs, o.nc.Drain())
	}
	if o.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		errs = append(errs, o.srv.Shutdown(ctx))
		cancel()
	}
	if o.wav != nil {
		errs = append(errs, o.wav.Close())
	}
	if o.wavFile != nil {
		errs = append(errs, o.wavFile.Close())
		log.Printf("ppgmon: wrote %d frames to %s", o.wav.Frames(), o.wavFile.Name())
	}

	return errors.Join(errs...)
}

// serveHub exposes hub on /ws and its counters on /metrics.
func serveHub(addr string, hub *stream.Hub) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "clients %d\n", hub.Len())
		fmt.Fprintf(w, "messages %d\n", hub.Sent())
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Printf("ppgmon: websocket on %s/ws", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("ppgmon: http: %v", err)
		}
	}()

	return srv
}
