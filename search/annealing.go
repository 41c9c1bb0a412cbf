// SPDX-License-Identifier: MIT

package search

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/solution"
)

// SimulatedAnnealing anneals from a random solution.
func SimulatedAnnealing(p *solution.Problem, rng *rand.Rand, opts ...Option) Result {
	return SimulatedAnnealingFrom(solution.Random(p, rng), rng, opts...)
}

// SimulatedAnnealingFrom anneals from init and returns the best solution
// seen, which may differ from the final current one.
//
// Schedule:
//
//	T0    = Mu·f(init) / −ln(Mu)
//	beta  = (T0 − Tf) / (M·T0·Tf),  M = maxEvaluations / maxNeighbours
//	T    ← T / (1 + beta·T)          after each inner loop
//
// A neighbour that worsens fitness by d > 0 is rejected when a uniform draw
// exceeds d·T. The inner loop draws at most maxNeighbours neighbours and
// stops after maxSuccesses acceptances; the run stops when T < Tf, when the
// budget is spent, or after an inner loop with no acceptance.
func SimulatedAnnealingFrom(init *solution.Solution, rng *rand.Rand, opts ...Option) Result {
	o := gatherOptions(opts...)
	ledger := budget.NewLedger(o.maxEvaluations)
	res := Result{Algorithm: SimulatedAnnealingAlgo}
	res.Best = anneal(init, rng, ledger, o, &res.Trace, &res.Temperatures)
	res.Evaluations = ledger.Used()

	o.logger.Info("simulated annealing finished",
		zap.Int("evaluations", res.Evaluations),
		zap.Int("coolings", len(res.Temperatures)-1),
		zap.Float64("fitness", res.Best.Fitness()))

	return res
}

func anneal(init *solution.Solution, rng *rand.Rand, ledger *budget.Ledger, o Options, trace, temps *[]float64) *solution.Solution {
	n := init.Len()
	maxNeighbours := int(o.neighboursFactor * float64(n))
	if maxNeighbours < 1 {
		maxNeighbours = 1
	}
	maxSuccesses := int(o.successesFactor * float64(maxNeighbours))
	if maxSuccesses < 1 {
		maxSuccesses = 1
	}

	f0, c := init.FitnessAndConsumed()
	ledger.Charge(c)
	record(trace, f0)

	t0 := o.mu * f0 / -math.Log(o.mu)
	tf := o.finalTemperature
	record(temps, t0)
	if t0 <= tf {
		return init
	}
	m := float64(ledger.Limit()) / float64(maxNeighbours)
	beta := (t0 - tf) / (m * t0 * tf)

	var (
		cur, best = init, init
		bestF     = f0
		temp      = t0
		i         int
		successes int
		c1, c2    int
	)
	for temp >= tf && !ledger.Exhausted() {
		successes = 0
		for i = 0; i < maxNeighbours && !ledger.Exhausted(); i++ {
			next := cur.RandomNeighbour(rng)
			if next == nil {
				break
			}
			var fc, fn float64
			fc, c1 = cur.FitnessAndConsumed()
			fn, c2 = next.FitnessAndConsumed()
			ledger.Charge(c1 + c2)

			delta := fc - fn
			if rejected(delta, temp, rng.Float64()) {
				continue
			}
			cur = next
			successes++
			if fn < bestF {
				best, bestF = next, fn
			}
			record(trace, fn)
			if successes >= maxSuccesses {
				break
			}
		}

		temp = temp / (1 + beta*temp)
		record(temps, temp)
		o.logger.Debug("cooling",
			zap.Float64("temperature", temp),
			zap.Int("successes", successes),
			zap.Float64("best", bestF))
		if successes == 0 {
			break
		}
	}

	return best
}

// rejected is the acceptance test of a neighbour whose fitness improves on
// the current one by delta, given the uniform draw u. Only worsening moves
// can be rejected, with probability 1 - d·T for a worsening d = -delta.
func rejected(delta, temp, u float64) bool {
	return delta < 0 && u > -delta*temp
}
