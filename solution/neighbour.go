// SPDX-License-Identifier: MIT

package solution

import (
	"math/rand"

	"github.com/katalvlaran/cclust/budget"
	"github.com/katalvlaran/cclust/internal/randutil"
)

// Move reassigns Point to Cluster.
type Move struct {
	Point   int
	Cluster int
}

// AllMoves returns the n×k neighbourhood in point-major order.
func AllMoves(n, k int) []Move {
	moves := make([]Move, 0, n*k)
	var i, c int
	for i = 0; i < n; i++ {
		for c = 0; c < k; c++ {
			moves = append(moves, Move{Point: i, Cluster: c})
		}
	}

	return moves
}

// Apply returns a copy of s with m applied. The copy has an empty cache
// unless m leaves the assignment unchanged.
func (s *Solution) Apply(m Move) *Solution {
	if s.assignment[m.Point] == m.Cluster {
		return s.Clone()
	}
	n := s.derive()
	n.assignment[m.Point] = m.Cluster

	return n
}

// FirstImprovingNeighbour scans the shuffled neighbourhood and returns the
// first valid neighbour with strictly lower fitness. Value is nil when the
// scan ends without one: either s is a local optimum or the scan consumed
// remaining evaluations first. Moves that keep a point in its cluster are
// skipped. The returned neighbour carries its computed fitness.
//
// Complexity: O(n·k) candidates, each O(n·d) to evaluate.
func (s *Solution) FirstImprovingNeighbour(rng *rand.Rand, remaining int) budget.Evaluated[*Solution] {
	current, used := s.FitnessAndConsumed()

	moves := AllMoves(s.Len(), s.K())
	rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	var (
		f        float64
		consumed int
	)
	for _, m := range moves {
		if used >= remaining {
			break
		}
		if s.assignment[m.Point] == m.Cluster {
			continue
		}
		n := s.Apply(m)
		if !n.IsValid() {
			continue
		}
		f, consumed = n.FitnessAndConsumed()
		used += consumed
		if f < current {
			return budget.Of(n, used)
		}
	}

	return budget.Of[*Solution](nil, used)
}

// RandomNeighbour applies one random move that keeps the solution valid:
// a point drawn among clusters with at least two members goes to a different
// cluster. It returns nil when no point can move.
func (s *Solution) RandomNeighbour(rng *rand.Rand) *Solution {
	sizes := s.ClusterSizes()
	var movable []int
	for i, c := range s.assignment {
		if sizes[c] >= 2 {
			movable = append(movable, i)
		}
	}
	if len(movable) == 0 {
		return nil
	}
	point := randutil.Choose(movable, rng)

	return s.Apply(Move{Point: point, Cluster: randutil.IntnExcept(s.K(), s.assignment[point], rng)})
}
