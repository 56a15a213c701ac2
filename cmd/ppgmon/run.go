// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/ppgbeat"
	"github.com/ik5/ppgbeat/config"
	"github.com/ik5/ppgbeat/formats"
	"github.com/ik5/ppgbeat/heart"
	"github.com/ik5/ppgbeat/stream"
	"github.com/ik5/ppgbeat/synth"
	"github.com/ik5/ppgbeat/trace"
	"github.com/ik5/ppgbeat/ui"
)

var errUnsupportedFormat = errors.New("unsupported recording format")

func run(ctx context.Context, opts options, cfg config.Config, stdout io.Writer) error {
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	switch {
	case opts.relay:
		return runRelay(ctx, cfg)
	case !opts.live(cfg):
		return runReport(opts, cfg, stdout)
	}

	out, err := openOutputs(opts, cfg)
	if err != nil {
		return err
	}

	drive := func(ctx context.Context) error {
		if opts.in != "" {
			return replay(ctx, opts, cfg, out)
		}
		return generate(ctx, cfg, out)
	}

	if opts.tui {
		err = runTUI(ctx, opts, out, drive)
	} else {
		err = drive(ctx)
	}

	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// generate runs the monitor in real time on the built-in PPG generator.
func generate(ctx context.Context, cfg config.Config, out *outputs) error {
	ppg := synth.New(cfg.Monitor.SampleRate, cfg.Synth.BPM)
	ppg.Noise = cfg.Synth.Noise
	ppg.Drift = cfg.Synth.Drift
	ppg.Seed = cfg.Synth.Seed
	if err := ppg.Validate(); err != nil {
		return err
	}

	mon, err := heart.New(ppg, heart.NewSystemClock(), cfg.Monitor)
	if err != nil {
		return err
	}
	log.Printf("ppgmon: generating %.0f bpm at %d Hz", ppg.BPM, ppg.Rate)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	var emitErr error
	err = mon.Run(ctx, func(heart.Reading) {
		if err := out.emit(time.Since(start), mon); err != nil {
			emitErr = err
			cancel()
		}
	})
	if emitErr != nil {
		return emitErr
	}
	return err
}

// replay feeds a recording through the monitor, as fast as possible or at
// the recording's own pace with -realtime.
func replay(ctx context.Context, opts options, cfg config.Config, out *outputs) error {
	src, closeSrc, err := openRecording(opts.in)
	if err != nil {
		return err
	}
	defer closeSrc()

	recorded := src.SampleRate()
	src, err = trace.AtLeast(src, cfg.Monitor.SampleRate)
	if err != nil {
		return err
	}

	p, err := trace.NewPlayer(src, opts.channel)
	if err != nil {
		return err
	}
	if !p.Next() {
		if err := p.Err(); err != nil {
			return err
		}
		return trace.ErrEmptySource
	}

	mon, err := heart.New(p, p, cfg.Monitor)
	if err != nil {
		return err
	}
	log.Printf("ppgmon: replaying %s (%d Hz) at %d Hz", opts.in, recorded, mon.SampleRate())

	var tick <-chan time.Time
	if opts.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(mon.SampleRate()))
		defer ticker.Stop()
		tick = ticker.C
	}

	for p.Next() {
		if !mon.Update() {
			continue
		}
		if err := out.emit(p.Elapsed(), mon); err != nil {
			return err
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := p.Err(); err != nil {
		return err
	}

	log.Printf("ppgmon: %s done, %.1f bpm", opts.in, mon.BPM())
	return nil
}

// runTUI shows the readings in the terminal while drive runs in the
// background. Quitting the view stops drive.
func runTUI(ctx context.Context, opts options, out *outputs, drive func(context.Context) error) error {
	// The view owns the terminal; log lines would tear it.
	defer log.SetOutput(os.Stderr)
	if opts.logFile != "" {
		f, err := tea.LogToFile(opts.logFile, "")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- drive(ctx)
		close(out.ui)
	}()

	title := "ppgmon: generator"
	if opts.in != "" {
		title = "ppgmon: " + filepath.Base(opts.in)
	}

	prog := tea.NewProgram(ui.NewModel(title, out.ui), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	cancel()

	derr := <-errc
	if derr != nil && !errors.Is(derr, context.Canceled) {
		return derr
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// runReport analyses the whole recording and prints its beats.
func runReport(opts options, cfg config.Config, stdout io.Writer) error {
	src, closeSrc, err := openRecording(opts.in)
	if err != nil {
		return err
	}
	defer closeSrc()

	res, err := ppgbeat.AnalyzeChannel(src, opts.channel, cfg.Monitor)
	if err != nil {
		return fmt.Errorf("analysing %s: %w", opts.in, err)
	}

	return printReport(stdout, res, opts.jsonOut)
}

// runRelay forwards readings published by another ppgmon to websocket
// clients until ctx is done.
func runRelay(ctx context.Context, cfg config.Config) error {
	nc, err := stream.Connect(cfg.NATS.URL, "ppgmon-relay")
	if err != nil {
		return err
	}
	defer nc.Drain()

	hub := stream.NewHub()
	sub, err := stream.Relay(nc, cfg.NATS.Prefix, hub)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	srv := serveHub(cfg.Web.Addr, hub)
	log.Printf("ppgmon: relaying %s.reading", cfg.NATS.Prefix)

	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil
	}
	return ctx.Err()
}

// openRecording decodes path with the decoder registered for its
// extension. The returned func closes both the source and the file.
func openRecording(path string) (trace.Source, func(), error) {
	dec, ok := formats.NewRegistry().ForPath(path)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", errUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening recording: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return src, func() {
		src.Close()
		f.Close()
	}, nil
}
