// SPDX-License-Identifier: MIT

package population

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/solution"
)

// SelectBinaryTournament builds a population of size winners. Each winner is
// the fitter of two individuals drawn uniformly with replacement.
func (pop *Population) SelectBinaryTournament(size int, rng *rand.Rand) budget.Evaluated[*Population] {
	out := make([]*solution.Solution, size)
	var (
		used, c int
		i       int
	)
	for i = range out {
		a := pop.individuals[rng.Intn(len(pop.individuals))]
		b := pop.individuals[rng.Intn(len(pop.individuals))]
		out[i], c = solution.BinaryTournament(a, b)
		used += c
	}

	return budget.Of(&Population{individuals: out}, used)
}

// crossCount is the number of leading individuals taking part in crossover.
func crossCount(pCross float64, n int) int {
	return int(math.Round(pCross * float64(n)))
}

// CrossUniform replaces the adjacent pairs (0,1), (2,3), ... among the first
// round(pCross·N) individuals with their two uniform-crossover children.
// A trailing unpaired individual is kept as is.
func (pop *Population) CrossUniform(pCross float64, rng *rand.Rand) budget.Evaluated[*Population] {
	out := pop.Clone()
	count := crossCount(pCross, pop.Len())
	var i int
	for i = 0; i+1 < count; i += 2 {
		out.individuals[i], out.individuals[i+1] = solution.UniformCross(pop.individuals[i], pop.individuals[i+1], rng)
	}

	return budget.Of(out, 0)
}

// CrossSegment is CrossUniform with segment crossover; each pair yields
// SegmentCross(a, b) and SegmentCross(b, a).
func (pop *Population) CrossSegment(pCross float64, rng *rand.Rand) budget.Evaluated[*Population] {
	out := pop.Clone()
	count := crossCount(pCross, pop.Len())
	var i int
	for i = 0; i+1 < count; i += 2 {
		a, b := pop.individuals[i], pop.individuals[i+1]
		out.individuals[i] = solution.SegmentCross(a, b, rng)
		out.individuals[i+1] = solution.SegmentCross(b, a, rng)
	}

	return budget.Of(out, 0)
}

// MutateCount mutates count individuals drawn by position with replacement.
// An individual drawn twice is mutated twice.
func (pop *Population) MutateCount(count int, rng *rand.Rand) *Population {
	out := pop.Clone()
	var i int
	for i = 0; i < count; i++ {
		pos := rng.Intn(out.Len())
		out.individuals[pos] = out.individuals[pos].Mutated(rng)
	}

	return out
}

// MutateWithProbability mutates each individual independently with
// probability prob.
func (pop *Population) MutateWithProbability(prob float64, rng *rand.Rand) *Population {
	out := pop.Clone()
	for i, s := range out.individuals {
		if rng.Float64() < prob {
			out.individuals[i] = s.Mutated(rng)
		}
	}

	return out
}

// PreserveBestPastParent reinserts the best individual of prev at the index
// it held there when no individual of pop carries its assignment.
func (pop *Population) PreserveBestPastParent(prev *Population) budget.Evaluated[*Population] {
	best := prev.Best()
	out := pop.Clone()
	elite := prev.individuals[best.Value]
	if out.Contains(elite) < 0 {
		out.individuals[best.Value] = elite
	}

	return budget.Of(out, best.Evaluations)
}

// CompeteWithNewIndividuals lets each child, in order, replace the current
// worst individual when the child's fitness is strictly lower.
func (pop *Population) CompeteWithNewIndividuals(children *Population) budget.Evaluated[*Population] {
	out := pop.Clone()
	var (
		used int
		c    int
		f    float64
	)
	for _, child := range children.individuals {
		worst := out.Worst()
		used += worst.Evaluations
		f, c = child.FitnessAndConsumed()
		used += c
		if f < out.individuals[worst.Value].Fitness() {
			out.individuals[worst.Value] = child
		}
	}

	return budget.Of(out, used)
}
