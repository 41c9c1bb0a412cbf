// SPDX-License-Identifier: MIT

package solution

import (
	"math/rand"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/internal/randutil"
)

// SoftLocalSearch is the bounded refinement used by memetic search.
//
// Points are visited once, in random order. Each visited point is moved to
// the cluster giving the lowest fitness among its valid reassignments (its
// current cluster included, first found wins ties); the move is applied even
// when it does not improve. The pass stops after maxFails consecutive visits
// that left the point where it was, after every point was visited, or when
// remaining evaluations are spent.
//
// Complexity: O(n·k) evaluations in the worst case.
func (s *Solution) SoftLocalSearch(rng *rand.Rand, maxFails, remaining int) budget.Evaluated[*Solution] {
	cur := s.Clone()
	current, used := cur.FitnessAndConsumed()

	var (
		fails       int
		c           int
		consumed    int
		best        *Solution
		bestCluster int
		bestFitness float64
	)
	for _, i := range randutil.Perm(cur.Len(), rng) {
		if used >= remaining {
			break
		}

		from := cur.assignment[i]
		best = nil
		for c = 0; c < cur.K(); c++ {
			cand, f := cur, current
			if c != from {
				cand = cur.Apply(Move{Point: i, Cluster: c})
				if !cand.IsValid() {
					continue
				}
				f, consumed = cand.FitnessAndConsumed()
				used += consumed
			}
			if best == nil || f < bestFitness {
				best, bestCluster, bestFitness = cand, c, f
			}
		}

		cur, current = best, bestFitness
		if bestCluster == from {
			fails++
			if fails >= maxFails {
				break
			}
		} else {
			fails = 0
		}
	}

	return budget.Of(cur, used)
}
