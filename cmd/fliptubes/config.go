package main

import (
	"bytes"
	"os"
	"strconv"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RunConfig specifies a batch search over the graphs in a source file.
type RunConfig struct {
	Source      string `yaml:"source"`       // one edge list per line
	Mode        string `yaml:"mode"`         // "paths" | "p" | "cycles" | "c"
	Tries       int    `yaml:"tries"`        // trials per graph
	Talk        bool   `yaml:"talk"`         // print each found walk
	Workers     int    `yaml:"workers"`      // 0 denotes GOMAXPROCS
	Seed        uint64 `yaml:"seed"`         // 0 denotes random
	DropDupes   bool   `yaml:"drop_dupes"`   // skip graphs with an already searched edge set
	MetricsAddr string `yaml:"metrics_addr"` // if set, serves /metrics at this address
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Mode: gotubes.Mode_Paths.String(),
	}
}

// LoadFile overlays the YAML file at pathname onto cfg.  Unknown keys are an error.
func (cfg *RunConfig) LoadFile(pathname string) error {
	buf, err := os.ReadFile(pathname)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return errors.Wrapf(gotubes.ErrBadConfig, "%s: %v", pathname, err)
	}
	return nil
}

// ApplyArgs overlays the positional args: <source> <mode> <tries> [y|n]
func (cfg *RunConfig) ApplyArgs(args []string) error {
	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if len(args) > 1 {
		cfg.Mode = args[1]
	}
	if len(args) > 2 {
		tries, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Wrapf(gotubes.ErrBadTries, "%q", args[2])
		}
		cfg.Tries = tries
	}
	if len(args) > 3 {
		cfg.Talk = args[3] == "y"
	}
	return nil
}

func (cfg *RunConfig) Validate() error {
	if cfg.Source == "" {
		return errors.Wrap(gotubes.ErrBadConfig, "no source file given")
	}
	opts, err := cfg.SearchOpts()
	if err != nil {
		return err
	}
	return opts.Validate()
}

func (cfg *RunConfig) SearchOpts() (gotubes.SearchOpts, error) {
	mode, err := gotubes.ParseMode(cfg.Mode)
	if err != nil {
		return gotubes.SearchOpts{}, errors.Wrapf(err, "%q", cfg.Mode)
	}
	return gotubes.SearchOpts{
		Mode:    mode,
		Tries:   cfg.Tries,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
	}, nil
}
