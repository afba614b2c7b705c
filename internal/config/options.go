package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default timings of the simulated download
const (
	DefaultSimulatedDelay   = 2 * time.Second
	DefaultStatusClearDelay = 3 * time.Second

	MaxDelay = 60 * time.Second
)

// Options holds the timings used by the download service
type Options struct {
	SimulatedDelay   time.Duration
	StatusClearDelay time.Duration
}

// DefaultOptions returns the standard 2s download / 3s status timings
func DefaultOptions() Options {
	return Options{
		SimulatedDelay:   DefaultSimulatedDelay,
		StatusClearDelay: DefaultStatusClearDelay,
	}
}

// Validate rejects negative or oversized delays
func (o Options) Validate() error {
	if o.SimulatedDelay < 0 || o.SimulatedDelay > MaxDelay {
		return fmt.Errorf("simulated delay out of range: %s", o.SimulatedDelay)
	}
	if o.StatusClearDelay < 0 || o.StatusClearDelay > MaxDelay {
		return fmt.Errorf("status clear delay out of range: %s", o.StatusClearDelay)
	}
	return nil
}

// fileOptions mirrors the YAML schema of the terminal app's config file
type fileOptions struct {
	Download struct {
		SimulatedDelay   string `yaml:"simulated_delay"`
		StatusClearDelay string `yaml:"status_clear_delay"`
	} `yaml:"download"`
}

// LoadFile reads Options from a YAML file. A missing file yields the
// defaults; fields left empty keep their default value.
//
//	download:
//	  simulated_delay: 2s
//	  status_clear_delay: 3s
func LoadFile(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("read config: %w", err)
	}

	var fo fileOptions
	if err := yaml.Unmarshal(b, &fo); err != nil {
		return opts, fmt.Errorf("parse config: %w", err)
	}

	if v := fo.Download.SimulatedDelay; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return opts, fmt.Errorf("download.simulated_delay: %w", err)
		}
		opts.SimulatedDelay = d
	}
	if v := fo.Download.StatusClearDelay; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return opts, fmt.Errorf("download.status_clear_delay: %w", err)
		}
		opts.StatusClearDelay = d
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
