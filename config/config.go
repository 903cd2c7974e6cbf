// SPDX-License-Identifier: MIT

// Package config loads the run configuration of the gatsp command from a
// TOML or YAML file. Keys left out of the file keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/gatsp/tsp"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for a file extension other than
	// .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrUnknownKey is returned when the file sets a key Config lacks.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrNoInstances is returned by Validate for an empty instance list.
	ErrNoInstances = errors.New("config: no instances")

	// ErrProgressEvery is returned by Validate for a negative cadence.
	ErrProgressEvery = errors.New("config: progress_every must be >= 0")
)

// DefaultProgressEvery is the default progress log cadence.
const DefaultProgressEvery = 10

// Format names a config file syntax.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// GA holds the genetic-algorithm parameters.
type GA struct {
	PopulationSize int     `toml:"population_size" yaml:"population_size"`
	Generations    int     `toml:"generations" yaml:"generations"`
	CrossoverRate  float64 `toml:"crossover_rate" yaml:"crossover_rate"`
	MutationRate   float64 `toml:"mutation_rate" yaml:"mutation_rate"`
	EliteCount     int     `toml:"elite_count" yaml:"elite_count"`
	Seed           int64   `toml:"seed" yaml:"seed"`

	// ProgressEvery is the generation cadence of progress log lines;
	// 0 disables them.
	ProgressEvery int `toml:"progress_every" yaml:"progress_every"`
}

// Config is the whole run configuration.
type Config struct {
	// Instances are TSPLIB file paths, run in order.
	Instances []string `toml:"instances" yaml:"instances"`

	OutputDir   string `toml:"output_dir" yaml:"output_dir"`
	MetricsFile string `toml:"metrics_file" yaml:"metrics_file"`

	// DatabaseURL enables the PostgreSQL run history when set.
	DatabaseURL string `toml:"database_url" yaml:"database_url"`

	GA GA `toml:"ga" yaml:"ga"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Instances: []string{"burma14.tsp", "kroA100.tsp", "pcb442.tsp"},
		OutputDir: ".",
		GA: GA{
			PopulationSize: tsp.DefaultPopulationSize,
			Generations:    tsp.DefaultGenerations,
			CrossoverRate:  tsp.DefaultCrossoverRate,
			MutationRate:   tsp.DefaultMutationRate,
			EliteCount:     tsp.DefaultEliteCount,
			Seed:           tsp.DefaultSeed,
			ProgressEvery:  DefaultProgressEvery,
		},
	}
}

// FormatOf picks the syntax from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads the file at path over Default. The result is not validated.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a config document over Default. Unknown keys are rejected:
// TOML reports them as ErrUnknownKey, YAML as a decode error naming the
// field.
func Decode(r io.Reader, format Format) (Config, error) {
	c := Default()
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&c)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, extra[0])
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// an empty document decodes to io.EOF and keeps the defaults
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return c, nil
}

// Options converts the GA table to engine options.
func (c Config) Options() tsp.Options {
	o := tsp.DefaultOptions()
	o.PopulationSize = c.GA.PopulationSize
	o.Generations = c.GA.Generations
	o.CrossoverRate = c.GA.CrossoverRate
	o.MutationRate = c.GA.MutationRate
	o.EliteCount = c.GA.EliteCount
	o.Seed = c.GA.Seed

	return o
}

// Validate applies the engine's parameter checks plus the config's own.
func (c Config) Validate() error {
	if len(c.Instances) == 0 {
		return ErrNoInstances
	}
	if c.GA.ProgressEvery < 0 {
		return fmt.Errorf("%w: got %d", ErrProgressEvery, c.GA.ProgressEvery)
	}

	return c.Options().Validate()
}
