// SPDX-License-Identifier: MIT

package search

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/solution"
)

// LocalSearch climbs from a random solution until a local optimum is reached
// or the evaluation budget is spent.
func LocalSearch(p *solution.Problem, rng *rand.Rand, opts ...Option) Result {
	return LocalSearchFrom(solution.Random(p, rng), rng, opts...)
}

// LocalSearchFrom is LocalSearch from a given valid solution.
func LocalSearchFrom(init *solution.Solution, rng *rand.Rand, opts ...Option) Result {
	o := gatherOptions(opts...)
	ledger := budget.NewLedger(o.maxEvaluations)
	res := Result{Algorithm: LocalSearchAlgo}
	res.Best = climb(init, rng, ledger, &res.Trace)
	res.Evaluations = ledger.Used()

	o.logger.Info("local search finished",
		zap.Int("evaluations", res.Evaluations),
		zap.Int("steps", len(res.Trace)),
		zap.Float64("fitness", res.Best.Fitness()))

	return res
}

// climb replaces the current solution with its first improving neighbour
// until none exists or ledger is exhausted. trace may be nil.
func climb(init *solution.Solution, rng *rand.Rand, ledger *budget.Ledger, trace *[]float64) *solution.Solution {
	cur := init
	f, c := cur.FitnessAndConsumed()
	ledger.Charge(c)
	record(trace, f)

	for !ledger.Exhausted() {
		res := cur.FirstImprovingNeighbour(rng, ledger.Remaining())
		ledger.Charge(res.Evaluations)
		if res.Value == nil {
			break
		}
		cur = res.Value
		record(trace, cur.Fitness())
	}

	return cur
}

func record(trace *[]float64, f float64) {
	if trace != nil {
		*trace = append(*trace, f)
	}
}
