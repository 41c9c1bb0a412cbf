// Package population_test provides helpers shared across *_test.go files in
// this package.
package population_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
	"github.com/katalvlaran/cclust/solution"
)

const seedDet = int64(2024)

// Repeat runs fn n times. Useful for randomized property checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

func newRNG() *rand.Rand { return rand.New(rand.NewSource(seedDet)) }

// gridProblem places n points on a line with a chain of alternating
// constraints and k clusters.
func gridProblem(t *testing.T, n, k int) *solution.Problem {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i % 3)}
	}
	pts, err := dataset.FromRows(rows)
	require.NoError(t, err)

	cs := constraint.NewSet()
	for i := 0; i+1 < n; i += 2 {
		if i%4 == 0 {
			cs.Add(i, i+1, constraint.MustLink)
		} else {
			cs.Add(i, i+1, constraint.CannotLink)
		}
	}
	p, err := solution.NewProblem(pts, cs, k)
	require.NoError(t, err)

	return p
}

func mustNew(t *testing.T, p *solution.Problem, a []int) *solution.Solution {
	t.Helper()
	s, err := solution.New(p, a)
	require.NoError(t, err)

	return s
}
