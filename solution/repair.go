// SPDX-License-Identifier: MIT

package solution

import (
	"math/rand"

	"github.com/katalvlaran/cclust/internal/randutil"
)

// Repair refills every empty cluster in place. For each empty cluster, in
// ascending id order, a donor cluster holding at least two points is drawn
// uniformly, then one of its points is drawn uniformly and moved. A donor
// never becomes empty, so each step removes exactly one empty cluster.
// Valid solutions are left untouched, cache included.
//
// Complexity: O(E·n) for E empty clusters.
func (s *Solution) Repair(rng *rand.Rand) {
	empty := s.EmptyClusters()
	if len(empty) == 0 {
		return
	}

	sizes := s.ClusterSizes()
	var (
		target int
		donors []int
	)
	for len(empty) > 0 {
		target, empty = empty[0], empty[1:]

		donors = donors[:0]
		for c, n := range sizes {
			if n >= 2 {
				donors = append(donors, c)
			}
		}
		donor := randutil.Choose(donors, rng)
		point := randutil.Choose(s.PointsInCluster(donor), rng)

		s.set(point, target)
		sizes[donor]--
		sizes[target]++
	}
	s.cached = false
}
