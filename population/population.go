// SPDX-License-Identifier: MIT

package population

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/solution"
)

// Population is an ordered collection of solutions.
type Population struct {
	individuals []*solution.Solution
}

// New returns a population holding the given individuals, in order.
func New(individuals ...*solution.Solution) *Population {
	return &Population{individuals: slices.Clone(individuals)}
}

// Random returns size random valid solutions of p.
func Random(p *solution.Problem, size int, rng *rand.Rand) *Population {
	ind := make([]*solution.Solution, size)
	var i int
	for i = range ind {
		ind[i] = solution.Random(p, rng)
	}

	return &Population{individuals: ind}
}

// Len returns the number of individuals.
func (pop *Population) Len() int { return len(pop.individuals) }

// At returns individual i.
func (pop *Population) At(i int) *solution.Solution { return pop.individuals[i] }

// Set replaces individual i in place.
func (pop *Population) Set(i int, s *solution.Solution) { pop.individuals[i] = s }

// Individuals returns a copy of the individual slice.
func (pop *Population) Individuals() []*solution.Solution { return slices.Clone(pop.individuals) }

// Clone returns a new population sharing the same individuals.
func (pop *Population) Clone() *Population { return New(pop.individuals...) }

// AllUncached reports whether no individual has a known fitness.
func (pop *Population) AllUncached() bool {
	for _, s := range pop.individuals {
		if s.Cached() {
			return false
		}
	}

	return true
}

// Contains returns the index of the first individual with the same
// assignment as s, or -1.
func (pop *Population) Contains(s *solution.Solution) int {
	for i, ind := range pop.individuals {
		if ind.Equal(s) {
			return i
		}
	}

	return -1
}

// EvaluateAll fills every fitness cache and returns the evaluations consumed.
func (pop *Population) EvaluateAll() int {
	var used, c int
	for _, s := range pop.individuals {
		_, c = s.FitnessAndConsumed()
		used += c
	}

	return used
}

// Best returns the index of the lowest-fitness individual (first on ties).
// Panics on an empty population.
func (pop *Population) Best() budget.Evaluated[int] {
	return pop.extreme(func(f, ref float64) bool { return f < ref })
}

// Worst returns the index of the highest-fitness individual (first on ties).
// Panics on an empty population.
func (pop *Population) Worst() budget.Evaluated[int] {
	return pop.extreme(func(f, ref float64) bool { return f > ref })
}

func (pop *Population) extreme(better func(f, ref float64) bool) budget.Evaluated[int] {
	if len(pop.individuals) == 0 {
		panic("population: empty population")
	}
	ref, used := pop.individuals[0].FitnessAndConsumed()
	idx := 0
	var (
		f float64
		c int
	)
	for i, s := range pop.individuals[1:] {
		f, c = s.FitnessAndConsumed()
		used += c
		if better(f, ref) {
			idx, ref = i+1, f
		}
	}

	return budget.Of(idx, used)
}
