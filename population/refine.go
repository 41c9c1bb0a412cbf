// SPDX-License-Identifier: MIT

package population

import (
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/internal/randutil"
)

// RefineMode selects which individuals a memetic generation refines.
type RefineMode int

const (
	// RefineAll refines every individual.
	RefineAll RefineMode = iota
	// RefineRandom refines a random fraction of the individuals.
	RefineRandom
	// RefineElitist refines the fittest fraction of the individuals.
	RefineElitist
)

// String implements fmt.Stringer.
func (m RefineMode) String() string {
	switch m {
	case RefineAll:
		return "all"
	case RefineRandom:
		return "random"
	case RefineElitist:
		return "elitist"
	default:
		return "unknown"
	}
}

// SoftLocalSearch applies solution.SoftLocalSearch to the individuals picked
// by mode. For RefineRandom and RefineElitist, round(fraction·N) individuals
// are refined, at least one. Evaluations are charged against remaining; once
// it is spent the rest are left unrefined.
func (pop *Population) SoftLocalSearch(mode RefineMode, fraction float64, maxFails int, rng *rand.Rand, remaining int) budget.Evaluated[*Population] {
	out := pop.Clone()
	targets, used := pop.refineTargets(mode, fraction, rng)

	for _, i := range targets {
		if used >= remaining {
			break
		}
		res := out.individuals[i].SoftLocalSearch(rng, maxFails, remaining-used)
		out.individuals[i] = res.Value
		used += res.Evaluations
	}

	return budget.Of(out, used)
}

// refineTargets returns the indexes to refine and the evaluations spent
// choosing them.
func (pop *Population) refineTargets(mode RefineMode, fraction float64, rng *rand.Rand) ([]int, int) {
	n := pop.Len()
	count := int(math.Round(fraction * float64(n)))
	if count < 1 {
		count = 1
	}
	if count > n {
		count = n
	}

	switch mode {
	case RefineRandom:
		return randutil.Perm(n, rng)[:count], 0
	case RefineElitist:
		used := pop.EvaluateAll()
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			fa, fb := pop.individuals[a].Fitness(), pop.individuals[b].Fitness()
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		})

		return idx[:count], used
	default:
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return idx, 0
	}
}
