// SPDX-License-Identifier: EPL-2.0

// Package config loads and saves the ppgmon settings file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/ppgbeat/heart"
	"github.com/ik5/ppgbeat/stream"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the monitor tuning and the defaults of every ppgmon output.
type Config struct {
	Monitor heart.Config `json:"monitor"`
	Synth   SynthConfig  `json:"synth"`
	NATS    NATSConfig   `json:"nats"`
	Web     WebConfig    `json:"web"`
}

// SynthConfig drives the built-in generator used when no recording is given.
type SynthConfig struct {
	BPM   float64 `json:"bpm"`
	Noise float64 `json:"noise"`
	Drift float64 `json:"drift"`
	Seed  uint64  `json:"seed"`
}

type NATSConfig struct {
	URL       string `json:"url"`
	Prefix    string `json:"prefix"`
	WaveBatch int    `json:"wave_batch"`
}

type WebConfig struct {
	Addr string `json:"addr"`
}

// Default returns a config with the tuned monitor defaults. Outputs stay
// off until an address is set.
func Default() Config {
	return Config{
		Monitor: heart.DefaultConfig(),
		Synth: SynthConfig{
			BPM:   72,
			Noise: 2,
			Drift: 8,
			Seed:  1,
		},
		NATS: NATSConfig{
			Prefix:    "ppg",
			WaveBatch: stream.DefaultWaveBatch,
		},
	}
}

// Validate reports settings the monitor or the outputs cannot run with.
func (c Config) Validate() error {
	if err := c.Monitor.Validate(); err != nil {
		return fmt.Errorf("%w: monitor: %w", ErrInvalidConfig, err)
	}

	coeffs := map[string]float64{
		"main_smoothing":               c.Monitor.MainSmoothing,
		"amplitude_smoothing":          c.Monitor.AmplitudeSmoothing,
		"bpm_smoothing":                c.Monitor.BPMSmoothing,
		"amplitude_envelope_smoothing": c.Monitor.AmplitudeEnvelopeSmoothing,
		"bpm_envelope_smoothing":       c.Monitor.BPMEnvelopeSmoothing,
	}
	for name, v := range coeffs {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: monitor.%s = %v, want [0, 1]", ErrInvalidConfig, name, v)
		}
	}

	if !(c.Synth.BPM > 0) {
		return fmt.Errorf("%w: synth.bpm = %v", ErrInvalidConfig, c.Synth.BPM)
	}
	if c.NATS.URL != "" {
		if c.NATS.Prefix == "" {
			return fmt.Errorf("%w: nats.prefix is empty", ErrInvalidConfig)
		}
		if c.NATS.WaveBatch <= 0 {
			return fmt.Errorf("%w: nats.wave_batch = %d", ErrInvalidConfig, c.NATS.WaveBatch)
		}
	}
	return nil
}

// Path returns ~/.config/ppgbeat/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ppgbeat", "config.json")
}

// Load reads the default config file. A missing or broken file yields the
// defaults; a broken one is logged.
func Load() Config {
	p := Path()
	if p == "" {
		return Default()
	}

	cfg, err := LoadFile(p)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("ppgbeat: warning: %v", err)
		}
		return Default()
	}
	return cfg
}

// LoadFile reads path over the defaults and validates the result.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveFile(path, cfg)
}

func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
