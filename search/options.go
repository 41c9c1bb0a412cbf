// SPDX-License-Identifier: MIT

// Package search: functional configuration shared by every driver.
//
// Options fields are unexported; callers compose Option values. WithX
// constructors panic on nonsensical values (programmer error); the defaults
// below are the single source of truth for zero-configuration runs.
package search

import (
	"fmt"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxEvaluations caps the fitness evaluations of a whole run.
	DefaultMaxEvaluations = 100000

	// DefaultPopulationSize is the population size of the genetic drivers.
	DefaultPopulationSize = 50

	// DefaultCrossoverProbability is the fraction of a generational population
	// taking part in crossover. Steady-state search always crosses both parents.
	DefaultCrossoverProbability = 0.7

	// SteadyStateCrossoverProbability is the crossover fraction of steady-state search.
	SteadyStateCrossoverProbability = 1.0

	// DefaultMutationRate is the expected number of mutated genes per
	// chromosome; the per-gene probability is DefaultMutationRate/n.
	DefaultMutationRate = 0.1
)

// Simulated annealing.
const (
	// DefaultMu sets T0 = Mu·f0 / −ln(Mu).
	DefaultMu = 0.3

	// DefaultFinalTemperature stops cooling once the temperature drops below it.
	DefaultFinalTemperature = 0.001

	// DefaultNeighboursFactor gives maxNeighbours = factor·n per temperature.
	DefaultNeighboursFactor = 10.0

	// DefaultSuccessesFactor gives maxSuccesses = factor·maxNeighbours.
	DefaultSuccessesFactor = 0.1
)

// Memetic search.
const (
	// DefaultMemeticPeriod applies soft local search every Period generations,
	// starting with the first.
	DefaultMemeticPeriod = 10

	// DefaultMemeticFraction is the share of the population refined by the
	// random and elitist variants.
	DefaultMemeticFraction = 0.1

	// DefaultMaxFailsFactor gives maxFails = round(factor·n).
	DefaultMaxFailsFactor = 0.1
)

// Restart-based searches.
const (
	// DefaultRepetitions is the number of restarts of iterated and multistart
	// local search.
	DefaultRepetitions = 10

	// DefaultRepetitionEvaluations is the budget of each restart.
	DefaultRepetitionEvaluations = 10000

	// DefaultHardMutationFraction is the share of genes re-randomized by the
	// iterated local search perturbation.
	DefaultHardMutationFraction = 0.1
)

// COP-KMeans.
const (
	// DefaultMaxResets bounds the attempts after a cluster was left empty.
	DefaultMaxResets = 100

	// DefaultRobustIterations caps the iterations of the robust variant.
	DefaultRobustIterations = 50

	// DefaultMaxKMeansIterations caps the classic variant, which otherwise
	// runs until the centroids stop moving.
	DefaultMaxKMeansIterations = 1000
)

// Options holds the resolved configuration of a run.
type Options struct {
	maxEvaluations        int
	populationSize        int
	crossoverProbability  float64
	mutationRate          float64
	mu                    float64
	finalTemperature      float64
	neighboursFactor      float64
	successesFactor       float64
	memeticPeriod         int
	memeticFraction       float64
	maxFailsFactor        float64
	repetitions           int
	repetitionEvaluations int
	hardMutationFraction  float64
	maxResets             int
	robustIterations      int
	maxKMeansIterations   int
	logger                *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration settings.
func DefaultOptions() Options {
	return Options{
		maxEvaluations:        DefaultMaxEvaluations,
		populationSize:        DefaultPopulationSize,
		crossoverProbability:  DefaultCrossoverProbability,
		mutationRate:          DefaultMutationRate,
		mu:                    DefaultMu,
		finalTemperature:      DefaultFinalTemperature,
		neighboursFactor:      DefaultNeighboursFactor,
		successesFactor:       DefaultSuccessesFactor,
		memeticPeriod:         DefaultMemeticPeriod,
		memeticFraction:       DefaultMemeticFraction,
		maxFailsFactor:        DefaultMaxFailsFactor,
		repetitions:           DefaultRepetitions,
		repetitionEvaluations: DefaultRepetitionEvaluations,
		hardMutationFraction:  DefaultHardMutationFraction,
		maxResets:             DefaultMaxResets,
		robustIterations:      DefaultRobustIterations,
		maxKMeansIterations:   DefaultMaxKMeansIterations,
		logger:                zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func positiveInt(name string, v int) {
	if v <= 0 {
		panic(fmt.Sprintf("search: %s must be > 0, got %d", name, v))
	}
}

func probability(name string, v float64) {
	if v < 0 || v > 1 {
		panic(fmt.Sprintf("search: %s must be in [0,1], got %g", name, v))
	}
}

func positiveFloat(name string, v float64) {
	if !(v > 0) {
		panic(fmt.Sprintf("search: %s must be > 0, got %g", name, v))
	}
}

// WithMaxEvaluations sets the evaluation budget of the run.
func WithMaxEvaluations(n int) Option {
	positiveInt("max evaluations", n)
	return func(o *Options) { o.maxEvaluations = n }
}

// WithPopulationSize sets the genetic population size (at least 2).
func WithPopulationSize(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("search: population size must be >= 2, got %d", n))
	}
	return func(o *Options) { o.populationSize = n }
}

// WithCrossoverProbability sets the generational crossover fraction.
func WithCrossoverProbability(p float64) Option {
	probability("crossover probability", p)
	return func(o *Options) { o.crossoverProbability = p }
}

// WithMutationRate sets the expected mutated genes per chromosome.
func WithMutationRate(r float64) Option {
	if r < 0 {
		panic(fmt.Sprintf("search: mutation rate must be >= 0, got %g", r))
	}
	return func(o *Options) { o.mutationRate = r }
}

// WithMu sets the annealing initial-temperature factor, in (0,1).
func WithMu(mu float64) Option {
	if !(mu > 0 && mu < 1) {
		panic(fmt.Sprintf("search: mu must be in (0,1), got %g", mu))
	}
	return func(o *Options) { o.mu = mu }
}

// WithFinalTemperature sets the annealing stop temperature.
func WithFinalTemperature(t float64) Option {
	positiveFloat("final temperature", t)
	return func(o *Options) { o.finalTemperature = t }
}

// WithNeighboursFactor sets maxNeighbours = factor·n.
func WithNeighboursFactor(f float64) Option {
	positiveFloat("neighbours factor", f)
	return func(o *Options) { o.neighboursFactor = f }
}

// WithSuccessesFactor sets maxSuccesses = factor·maxNeighbours.
func WithSuccessesFactor(f float64) Option {
	positiveFloat("successes factor", f)
	return func(o *Options) { o.successesFactor = f }
}

// WithMemeticPeriod sets the generations between soft local searches.
func WithMemeticPeriod(n int) Option {
	positiveInt("memetic period", n)
	return func(o *Options) { o.memeticPeriod = n }
}

// WithMemeticFraction sets the refined share for random/elitist memetic search.
func WithMemeticFraction(f float64) Option {
	probability("memetic fraction", f)
	return func(o *Options) { o.memeticFraction = f }
}

// WithMaxFailsFactor sets maxFails = round(factor·n).
func WithMaxFailsFactor(f float64) Option {
	positiveFloat("max fails factor", f)
	return func(o *Options) { o.maxFailsFactor = f }
}

// WithRepetitions sets the restarts of iterated and multistart local search.
func WithRepetitions(n int) Option {
	positiveInt("repetitions", n)
	return func(o *Options) { o.repetitions = n }
}

// WithRepetitionEvaluations sets the budget of each restart.
func WithRepetitionEvaluations(n int) Option {
	positiveInt("repetition evaluations", n)
	return func(o *Options) { o.repetitionEvaluations = n }
}

// WithHardMutationFraction sets the re-randomized share of genes.
func WithHardMutationFraction(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic(fmt.Sprintf("search: hard mutation fraction must be in (0,1], got %g", f))
	}
	return func(o *Options) { o.hardMutationFraction = f }
}

// WithMaxResets bounds COP-KMeans attempts.
func WithMaxResets(n int) Option {
	positiveInt("max resets", n)
	return func(o *Options) { o.maxResets = n }
}

// WithRobustIterations caps the robust COP-KMeans iterations.
func WithRobustIterations(n int) Option {
	positiveInt("robust iterations", n)
	return func(o *Options) { o.robustIterations = n }
}

// WithMaxKMeansIterations caps the classic COP-KMeans iterations.
func WithMaxKMeansIterations(n int) Option {
	positiveInt("kmeans iterations", n)
	return func(o *Options) { o.maxKMeansIterations = n }
}

// WithLogger sets the logger. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
