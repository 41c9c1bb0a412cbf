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

func crossWith(kind Crossover, pop *population.Population, pCross float64, rng *rand.Rand) budget.Evaluated[*population.Population] {
	if kind == SegmentCrossover {
		return pop.CrossSegment(pCross, rng)
	}

	return pop.CrossUniform(pCross, rng)
}

// GenerationalGenetic evolves a random population generation by generation:
// binary tournament of the whole population, crossover of the leading
// individuals, round(rate·size) mutations, elitism, evaluation.
func GenerationalGenetic(p *solution.Problem, rng *rand.Rand, kind Crossover, opts ...Option) Result {
	o := gatherOptions(opts...)
	algo := GenerationalUniform
	if kind == SegmentCrossover {
		algo = GenerationalSegment
	}
	res := evolve(p, rng, o, kind, nil)
	res.Algorithm = algo

	o.logger.Info("generational genetic search finished",
		zap.Stringer("crossover", kind),
		zap.Int("generations", res.Generations),
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("fitness", res.Best.Fitness()))

	return res
}

// generationHook runs after a generation is evaluated and may replace it.
type generationHook func(gen int, pop *population.Population, ledger *budget.Ledger) *population.Population

// evolve is the generational loop shared by the genetic and memetic drivers.
func evolve(p *solution.Problem, rng *rand.Rand, o Options, kind Crossover, hook generationHook) Result {
	ledger := budget.NewLedger(o.maxEvaluations)
	pop := population.Random(p, o.populationSize, rng)
	ledger.Charge(pop.EvaluateAll())

	mutations := int(math.Round(o.mutationRate * float64(o.populationSize)))
	var (
		res Result
		gen int
	)
	var before int
	for !ledger.Exhausted() {
		before = ledger.Used()
		sel := pop.SelectBinaryTournament(o.populationSize, rng)
		ledger.Charge(sel.Evaluations)

		crossed := crossWith(kind, sel.Value, o.crossoverProbability, rng)
		ledger.Charge(crossed.Evaluations)

		mutated := crossed.Value.MutateCount(mutations, rng)

		next := mutated.PreserveBestPastParent(pop)
		ledger.Charge(next.Evaluations)
		ledger.Charge(next.Value.EvaluateAll())

		if hook != nil {
			next.Value = hook(gen, next.Value, ledger)
		}
		pop = next.Value
		gen++

		best := pop.Best()
		ledger.Charge(best.Evaluations)
		res.Trace = append(res.Trace, pop.At(best.Value).Fitness())
		o.logger.Debug("generation",
			zap.Int("generation", gen),
			zap.Int("evaluations", ledger.Used()),
			zap.Float64("best", res.Trace[len(res.Trace)-1]))

		// Nothing crossed or mutated: every later generation is identical.
		if ledger.Used() == before {
			o.logger.Debug("generation consumed no evaluations, stopping", zap.Int("generation", gen))
			break
		}
	}

	res.Best = pop.At(pop.Best().Value)
	res.Evaluations = ledger.Used()
	res.Generations = gen

	return res
}

// SteadyStateGenetic breeds two children per step: binary tournament of two
// parents, crossover, mutation of each child with probability rate, then
// each child replaces the current worst individual if strictly fitter.
func SteadyStateGenetic(p *solution.Problem, rng *rand.Rand, kind Crossover, opts ...Option) Result {
	o := gatherOptions(opts...)
	ledger := budget.NewLedger(o.maxEvaluations)
	pop := population.Random(p, o.populationSize, rng)
	ledger.Charge(pop.EvaluateAll())

	res := Result{Algorithm: SteadyStateUniform}
	if kind == SegmentCrossover {
		res.Algorithm = SteadyStateSegment
	}
	for !ledger.Exhausted() {
		sel := pop.SelectBinaryTournament(2, rng)
		ledger.Charge(sel.Evaluations)

		crossed := crossWith(kind, sel.Value, SteadyStateCrossoverProbability, rng)
		ledger.Charge(crossed.Evaluations)

		children := crossed.Value.MutateWithProbability(o.mutationRate, rng)

		next := pop.CompeteWithNewIndividuals(children)
		ledger.Charge(next.Evaluations)
		pop = next.Value
		res.Generations++

		best := pop.Best()
		ledger.Charge(best.Evaluations)
		res.Trace = append(res.Trace, pop.At(best.Value).Fitness())
	}

	res.Best = pop.At(pop.Best().Value)
	res.Evaluations = ledger.Used()

	o.logger.Info("steady-state genetic search finished",
		zap.Stringer("crossover", kind),
		zap.Int("steps", res.Generations),
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("fitness", res.Best.Fitness()))

	return res
}
