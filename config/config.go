// SPDX-License-Identifier: MIT

// Package config loads run settings from a TOML file.
//
// Every search field is optional: a zero value keeps the library default.
// Validate reports out-of-range values as errors so that Options, which
// feeds the panicking search.WithX constructors, is only called on checked
// input.
//
// Example file:
//
//	[search]
//	max-evaluations = 50000
//	population-size = 30
//	mu = 0.25
//
//	[log]
//	level = "debug"
//	format = "json"
//	filename = "cclust.log"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/cclust/logutil"
	"github.com/katalvlaran/cclust/search"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of a settings file.
type Config struct {
	Search SearchConfig   `toml:"search"`
	Log    logutil.Config `toml:"log"`
}

// SearchConfig mirrors the search options. Zero means default.
type SearchConfig struct {
	MaxEvaluations        int     `toml:"max-evaluations"`
	PopulationSize        int     `toml:"population-size"`
	CrossoverProbability  float64 `toml:"crossover-probability"`
	MutationRate          float64 `toml:"mutation-rate"`
	Mu                    float64 `toml:"mu"`
	FinalTemperature      float64 `toml:"final-temperature"`
	NeighboursFactor      float64 `toml:"neighbours-factor"`
	SuccessesFactor       float64 `toml:"successes-factor"`
	MemeticPeriod         int     `toml:"memetic-period"`
	MemeticFraction       float64 `toml:"memetic-fraction"`
	MaxFailsFactor        float64 `toml:"max-fails-factor"`
	Repetitions           int     `toml:"repetitions"`
	RepetitionEvaluations int     `toml:"repetition-evaluations"`
	HardMutationFraction  float64 `toml:"hard-mutation-fraction"`
	MaxResets             int     `toml:"max-resets"`
	RobustIterations      int     `toml:"robust-iterations"`
	MaxKMeansIterations   int     `toml:"kmeans-iterations"`
}

// Default returns a configuration that keeps every library default.
func Default() Config {
	return Config{Log: logutil.DefaultConfig()}
}

// Decode reads a TOML document over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}

func checkNonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %g", ErrInvalid, name, v)
	}
	return nil
}

func checkAtMostOne(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be in [0,1], got %g", ErrInvalid, name, v)
	}
	return nil
}

// Validate checks every set field against the range its option accepts.
func (c Config) Validate() error {
	s := c.Search
	checks := []error{
		checkNonNegative("max-evaluations", float64(s.MaxEvaluations)),
		checkAtMostOne("crossover-probability", s.CrossoverProbability),
		checkNonNegative("mutation-rate", s.MutationRate),
		checkNonNegative("final-temperature", s.FinalTemperature),
		checkNonNegative("neighbours-factor", s.NeighboursFactor),
		checkNonNegative("successes-factor", s.SuccessesFactor),
		checkNonNegative("memetic-period", float64(s.MemeticPeriod)),
		checkAtMostOne("memetic-fraction", s.MemeticFraction),
		checkNonNegative("max-fails-factor", s.MaxFailsFactor),
		checkNonNegative("repetitions", float64(s.Repetitions)),
		checkNonNegative("repetition-evaluations", float64(s.RepetitionEvaluations)),
		checkAtMostOne("hard-mutation-fraction", s.HardMutationFraction),
		checkNonNegative("max-resets", float64(s.MaxResets)),
		checkNonNegative("robust-iterations", float64(s.RobustIterations)),
		checkNonNegative("kmeans-iterations", float64(s.MaxKMeansIterations)),
	}
	if s.PopulationSize == 1 || s.PopulationSize < 0 {
		checks = append(checks, fmt.Errorf("%w: population-size must be >= 2, got %d", ErrInvalid, s.PopulationSize))
	}
	if s.Mu < 0 || s.Mu >= 1 {
		checks = append(checks, fmt.Errorf("%w: mu must be in (0,1), got %g", ErrInvalid, s.Mu))
	}

	return errors.Join(checks...)
}

// Options converts the set fields into search options.
func (s SearchConfig) Options() []search.Option {
	var opts []search.Option
	if s.MaxEvaluations > 0 {
		opts = append(opts, search.WithMaxEvaluations(s.MaxEvaluations))
	}
	if s.PopulationSize > 0 {
		opts = append(opts, search.WithPopulationSize(s.PopulationSize))
	}
	if s.CrossoverProbability > 0 {
		opts = append(opts, search.WithCrossoverProbability(s.CrossoverProbability))
	}
	if s.MutationRate > 0 {
		opts = append(opts, search.WithMutationRate(s.MutationRate))
	}
	if s.Mu > 0 {
		opts = append(opts, search.WithMu(s.Mu))
	}
	if s.FinalTemperature > 0 {
		opts = append(opts, search.WithFinalTemperature(s.FinalTemperature))
	}
	if s.NeighboursFactor > 0 {
		opts = append(opts, search.WithNeighboursFactor(s.NeighboursFactor))
	}
	if s.SuccessesFactor > 0 {
		opts = append(opts, search.WithSuccessesFactor(s.SuccessesFactor))
	}
	if s.MemeticPeriod > 0 {
		opts = append(opts, search.WithMemeticPeriod(s.MemeticPeriod))
	}
	if s.MemeticFraction > 0 {
		opts = append(opts, search.WithMemeticFraction(s.MemeticFraction))
	}
	if s.MaxFailsFactor > 0 {
		opts = append(opts, search.WithMaxFailsFactor(s.MaxFailsFactor))
	}
	if s.Repetitions > 0 {
		opts = append(opts, search.WithRepetitions(s.Repetitions))
	}
	if s.RepetitionEvaluations > 0 {
		opts = append(opts, search.WithRepetitionEvaluations(s.RepetitionEvaluations))
	}
	if s.HardMutationFraction > 0 {
		opts = append(opts, search.WithHardMutationFraction(s.HardMutationFraction))
	}
	if s.MaxResets > 0 {
		opts = append(opts, search.WithMaxResets(s.MaxResets))
	}
	if s.RobustIterations > 0 {
		opts = append(opts, search.WithRobustIterations(s.RobustIterations))
	}
	if s.MaxKMeansIterations > 0 {
		opts = append(opts, search.WithMaxKMeansIterations(s.MaxKMeansIterations))
	}

	return opts
}
