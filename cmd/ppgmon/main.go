// SPDX-License-Identifier: EPL-2.0

// Command ppgmon runs the heartbeat monitor on a recording or on the built-in
// PPG generator and sends the readings to the terminal, NATS, websocket
// clients or a WAV file.
//
// Usage:
//
//	ppgmon -in trace.wav                  # print the beats of a recording
//	ppgmon -synth-bpm 80 -tui             # live generator in the terminal
//	ppgmon -in trace.wav -realtime -ws :8080 -nats nats://127.0.0.1:4222
//	ppgmon -relay -nats nats://127.0.0.1:4222 -ws :8080
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/ppgbeat/config"
	"github.com/ik5/ppgbeat/trace"
)

type options struct {
	configPath string
	saveConfig bool

	in       string
	channel  int
	realtime bool
	duration time.Duration
	jsonOut  bool

	tui     bool
	logFile string
	wavOut  string
	relay   bool
}

// live reports whether readings go anywhere besides the final report.
func (o options) live(cfg config.Config) bool {
	return o.in == "" || o.tui || o.wavOut != "" || cfg.NATS.URL != "" || cfg.Web.Addr != ""
}

func main() {
	opts, cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("ppgmon: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, cfg, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("ppgmon: %v", err)
	}
}

// parseFlags reads args over the config file. Only flags given on the
// command line replace file values.
func parseFlags(args []string, errOut io.Writer) (options, config.Config, error) {
	var opts options
	def := config.Default()

	fs := flag.NewFlagSet("ppgmon", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	fs.BoolVar(&opts.saveConfig, "save-config", false, "write the effective config back to the config file")

	fs.StringVar(&opts.in, "in", "", "recording to replay (wav, aiff, mp3, ogg); the generator runs when empty")
	fs.IntVar(&opts.channel, "channel", trace.Mix, "recording channel, -1 mixes all channels")
	fs.BoolVar(&opts.realtime, "realtime", false, "replay the recording at its own pace")
	fs.DurationVar(&opts.duration, "duration", 0, "stop after this long (0 runs until interrupted)")
	fs.BoolVar(&opts.jsonOut, "json", false, "print the recording report as JSON")

	fs.BoolVar(&opts.tui, "tui", false, "show a live terminal view")
	fs.StringVar(&opts.logFile, "log", "", "log file while the terminal view is up")
	fs.StringVar(&opts.wavOut, "wav-out", "", "write normalized waveform, amplitude and beats to a WAV file")
	fs.BoolVar(&opts.relay, "relay", false, "only forward NATS readings to websocket clients")

	rate := fs.Int("rate", def.Monitor.SampleRate, "monitor sample rate in Hz")
	mainSmooth := fs.Float64("smoothing", def.Monitor.MainSmoothing, "waveform envelope smoothing [0,1]")
	ampSmooth := fs.Float64("amp-smoothing", def.Monitor.AmplitudeSmoothing, "amplitude low-pass coefficient [0,1]")
	bpmSmooth := fs.Float64("bpm-smoothing", def.Monitor.BPMSmoothing, "BPM low-pass coefficient [0,1]")
	ampEnv := fs.Float64("amp-envelope", def.Monitor.AmplitudeEnvelopeSmoothing, "amplitude change envelope smoothing [0,1]")
	bpmEnv := fs.Float64("bpm-envelope", def.Monitor.BPMEnvelopeSmoothing, "BPM change envelope smoothing [0,1]")

	synthBPM := fs.Float64("synth-bpm", def.Synth.BPM, "generator heart rate")
	synthNoise := fs.Float64("synth-noise", def.Synth.Noise, "generator noise, analog units")
	synthDrift := fs.Float64("synth-drift", def.Synth.Drift, "generator baseline drift, analog units")
	seed := fs.Uint64("seed", def.Synth.Seed, "generator seed")

	natsURL := fs.String("nats", def.NATS.URL, "NATS url, empty disables publishing")
	prefix := fs.String("prefix", def.NATS.Prefix, "NATS subject prefix")
	batch := fs.Int("wave-batch", def.NATS.WaveBatch, "waveform samples per NATS message")
	addr := fs.String("ws", def.Web.Addr, "websocket listen address, empty disables it")

	if err := fs.Parse(args); err != nil {
		return opts, def, err
	}
	if fs.NArg() > 0 {
		return opts, def, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return opts, def, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rate":
			cfg.Monitor.SampleRate = *rate
		case "smoothing":
			cfg.Monitor.MainSmoothing = *mainSmooth
		case "amp-smoothing":
			cfg.Monitor.AmplitudeSmoothing = *ampSmooth
		case "bpm-smoothing":
			cfg.Monitor.BPMSmoothing = *bpmSmooth
		case "amp-envelope":
			cfg.Monitor.AmplitudeEnvelopeSmoothing = *ampEnv
		case "bpm-envelope":
			cfg.Monitor.BPMEnvelopeSmoothing = *bpmEnv
		case "synth-bpm":
			cfg.Synth.BPM = *synthBPM
		case "synth-noise":
			cfg.Synth.Noise = *synthNoise
		case "synth-drift":
			cfg.Synth.Drift = *synthDrift
		case "seed":
			cfg.Synth.Seed = *seed
		case "nats":
			cfg.NATS.URL = *natsURL
		case "prefix":
			cfg.NATS.Prefix = *prefix
		case "wave-batch":
			cfg.NATS.WaveBatch = *batch
		case "ws":
			cfg.Web.Addr = *addr
		}
	})

	if err := cfg.Validate(); err != nil {
		return opts, def, err
	}
	if opts.relay && (cfg.NATS.URL == "" || cfg.Web.Addr == "") {
		return opts, def, errors.New("-relay needs both -nats and -ws")
	}

	if opts.saveConfig {
		path := opts.configPath
		if path == "" {
			path = config.Path()
		}
		if err := config.SaveFile(path, cfg); err != nil {
			return opts, def, fmt.Errorf("saving config: %w", err)
		}
		log.Printf("ppgmon: config saved to %s", path)
	}

	return opts, cfg, nil
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file is not an error; an explicit one must exist.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load(), nil
	}
	return config.LoadFile(path)
}
