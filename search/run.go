// SPDX-License-Identifier: MIT

package search

import (
	"math/rand"

	"github.com/katalvlaran/cclust/population"
	"github.com/katalvlaran/cclust/solution"
)

// Run dispatches algo to its driver.
func Run(p *solution.Problem, rng *rand.Rand, algo Algorithm, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}

	switch algo {
	case COPKMeansClassic:
		return COPKMeans(p, rng, false, opts...)
	case COPKMeansRobust:
		return COPKMeans(p, rng, true, opts...)
	case LocalSearchAlgo:
		return LocalSearch(p, rng, opts...), nil
	case GenerationalUniform:
		return GenerationalGenetic(p, rng, UniformCrossover, opts...), nil
	case GenerationalSegment:
		return GenerationalGenetic(p, rng, SegmentCrossover, opts...), nil
	case SteadyStateUniform:
		return SteadyStateGenetic(p, rng, UniformCrossover, opts...), nil
	case SteadyStateSegment:
		return SteadyStateGenetic(p, rng, SegmentCrossover, opts...), nil
	case MemeticAll:
		return Memetic(p, rng, population.RefineAll, opts...), nil
	case MemeticRandom:
		return Memetic(p, rng, population.RefineRandom, opts...), nil
	case MemeticElitist:
		return Memetic(p, rng, population.RefineElitist, opts...), nil
	case MultistartLocalSearchAlgo:
		return MultistartLocalSearch(p, rng, opts...), nil
	case IteratedLocalSearchAlgo:
		return IteratedLocalSearch(p, rng, RefineLocalSearch, opts...), nil
	case IteratedAnnealing:
		return IteratedLocalSearch(p, rng, RefineAnnealing, opts...), nil
	case SimulatedAnnealingAlgo:
		return SimulatedAnnealing(p, rng, opts...), nil
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}
