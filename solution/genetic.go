// SPDX-License-Identifier: MIT

package solution

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cclust/internal/randutil"
)

// BinaryTournament returns the fitter of a and b (b on ties) and the
// evaluations spent deciding.
func BinaryTournament(a, b *Solution) (*Solution, int) {
	fa, ca := a.FitnessAndConsumed()
	fb, cb := b.FitnessAndConsumed()
	if fa < fb {
		return a, ca + cb
	}

	return b, ca + cb
}

// UniformCross splits the gene positions with one random permutation into
// halves A (the first ⌊n/2⌋ positions) and B (the rest), and returns
// child1 = a@A ∪ b@B and child2 = b@A ∪ a@B. Both children are repaired.
// No fitness is evaluated.
func UniformCross(a, b *Solution, rng *rand.Rand) (*Solution, *Solution) {
	n := a.Len()
	perm := randutil.Perm(n, rng)

	c1, c2 := a.derive(), b.derive()
	for _, pos := range perm[n/2:] {
		c1.assignment[pos] = b.assignment[pos]
		c2.assignment[pos] = a.assignment[pos]
	}
	c1.Repair(rng)
	c2.Repair(rng)

	return c1, c2
}

// SegmentCross copies a's genes on a random wrap-around segment and draws
// every other gene 50/50 from a or b. The child is repaired. No fitness is
// evaluated.
func SegmentCross(a, b *Solution, rng *rand.Rand) *Solution {
	n := a.Len()

	return segmentCross(a, b, rng.Intn(n), rng.Intn(n), rng)
}

func segmentCross(a, b *Solution, start, length int, rng *rand.Rand) *Solution {
	n := a.Len()
	child := a.derive()
	inSegment := make([]bool, n)
	var i int
	for i = 0; i < length; i++ {
		inSegment[(start+i)%n] = true
	}
	for i = 0; i < n; i++ {
		if inSegment[i] {
			continue
		}
		if rng.Intn(2) == 1 {
			child.assignment[i] = b.assignment[i]
		}
	}
	child.Repair(rng)

	return child
}

// Mutated moves one uniformly drawn point to a different uniformly drawn
// cluster and repairs the result. A mutation that repair turns back into the
// input assignment is discarded and redrawn, so the result always differs
// from s.
func (s *Solution) Mutated(rng *rand.Rand) *Solution {
	for {
		m := s.derive()
		pos := rng.Intn(m.Len())
		m.assignment[pos] = randutil.IntnExcept(m.K(), m.assignment[pos], rng)
		m.Repair(rng)
		if !m.Equal(s) {
			return m
		}
	}
}

// HardMutated reassigns every gene of a random wrap-around segment of
// ⌈fraction·n⌉ positions (at least one) to a uniformly drawn cluster, then
// repairs. Results equal to s are redrawn.
func (s *Solution) HardMutated(rng *rand.Rand, fraction float64) *Solution {
	n := s.Len()
	length := int(math.Ceil(fraction * float64(n)))
	if length < 1 {
		length = 1
	}
	if length > n {
		length = n
	}
	var i int
	for {
		m := s.derive()
		start := rng.Intn(n)
		for i = 0; i < length; i++ {
			m.assignment[(start+i)%n] = rng.Intn(m.K())
		}
		m.Repair(rng)
		if !m.Equal(s) {
			return m
		}
	}
}
