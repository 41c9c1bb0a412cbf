// SPDX-License-Identifier: MIT

package search

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/solution"
)

// IteratedLocalSearch perturbs the incumbent with a hard mutation, refines
// the perturbed copy with a fresh per-repetition budget and keeps it when
// strictly fitter. The trace holds the incumbent fitness after each repetition.
func IteratedLocalSearch(p *solution.Problem, rng *rand.Rand, refiner Refiner, opts ...Option) Result {
	o := gatherOptions(opts...)
	res := Result{Algorithm: IteratedLocalSearchAlgo}
	if refiner == RefineAnnealing {
		res.Algorithm = IteratedAnnealing
	}

	cur := solution.Random(p, rng)
	f, c := cur.FitnessAndConsumed()
	res.Evaluations += c
	res.Trace = append(res.Trace, f)

	var r int
	for r = 0; r < o.repetitions; r++ {
		perturbed := cur.HardMutated(rng, o.hardMutationFraction)
		ledger := budget.NewLedger(o.repetitionEvaluations)

		var refined *solution.Solution
		if refiner == RefineAnnealing {
			refined = anneal(perturbed, rng, ledger, o, nil, nil)
		} else {
			refined = climb(perturbed, rng, ledger, nil)
		}
		res.Evaluations += ledger.Used()

		if refined.Fitness() < cur.Fitness() {
			cur = refined
		}
		res.Trace = append(res.Trace, cur.Fitness())
		o.logger.Debug("repetition",
			zap.Int("repetition", r),
			zap.Float64("incumbent", cur.Fitness()))
	}
	res.Best = cur
	res.Generations = o.repetitions

	o.logger.Info("iterated local search finished",
		zap.Stringer("algorithm", res.Algorithm),
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("fitness", res.Best.Fitness()))

	return res
}

// MultistartLocalSearch runs independent local searches from random
// solutions, each with its own budget, and keeps the fittest result.
func MultistartLocalSearch(p *solution.Problem, rng *rand.Rand, opts ...Option) Result {
	o := gatherOptions(opts...)
	res := Result{Algorithm: MultistartLocalSearchAlgo}

	var r int
	for r = 0; r < o.repetitions; r++ {
		ledger := budget.NewLedger(o.repetitionEvaluations)
		s := climb(solution.Random(p, rng), rng, ledger, nil)
		res.Evaluations += ledger.Used()

		if res.Best == nil || s.Fitness() < res.Best.Fitness() {
			res.Best = s
		}
		res.Trace = append(res.Trace, res.Best.Fitness())
	}
	res.Generations = o.repetitions

	o.logger.Info("multistart local search finished",
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("fitness", res.Best.Fitness()))

	return res
}
