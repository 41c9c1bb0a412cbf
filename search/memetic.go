// SPDX-License-Identifier: MIT

package search

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/population"
	"github.com/katalvlaran/cclust/solution"
)

// Memetic is generational search with uniform crossover where every
// Period-th generation (the first included) is refined by soft local search.
// mode picks the refined individuals: all of them, a random fraction, or the
// fittest fraction.
func Memetic(p *solution.Problem, rng *rand.Rand, mode population.RefineMode, opts ...Option) Result {
	o := gatherOptions(opts...)
	maxFails := int(math.Round(o.maxFailsFactor * float64(p.N())))

	hook := func(gen int, pop *population.Population, ledger *budget.Ledger) *population.Population {
		if gen%o.memeticPeriod != 0 || ledger.Exhausted() {
			return pop
		}
		refined := pop.SoftLocalSearch(mode, o.memeticFraction, maxFails, rng, ledger.Remaining())
		ledger.Charge(refined.Evaluations)
		o.logger.Debug("soft local search",
			zap.Int("generation", gen),
			zap.Stringer("mode", mode),
			zap.Int("evaluations", refined.Evaluations))

		return refined.Value
	}

	res := evolve(p, rng, o, UniformCrossover, hook)
	switch mode {
	case population.RefineRandom:
		res.Algorithm = MemeticRandom
	case population.RefineElitist:
		res.Algorithm = MemeticElitist
	default:
		res.Algorithm = MemeticAll
	}

	o.logger.Info("memetic search finished",
		zap.Stringer("mode", mode),
		zap.Int("generations", res.Generations),
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("fitness", res.Best.Fitness()))

	return res
}
