// Package solution_test provides helpers shared across *_test.go files in
// this package.
package solution_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
	"github.com/katalvlaran/cclust/solution"
)

const (
	// eps matches the tolerance used for the hand-computed distances below.
	eps = 0.01

	// seedDet is the deterministic seed for RNG-based operators.
	seedDet = int64(123456789)

	// repeatMany bounds the randomized property loops.
	repeatMany = 10000
)

// Repeat runs fn n times. Useful for randomized property checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// sixPointProblem is the one-hot 6-point instance with
// CL(0,1) CL(0,2) CL(1,3) ML(1,4) ML(2,5) and k=4.
func sixPointProblem(t *testing.T) *solution.Problem {
	t.Helper()
	rows := make([][]float64, 6)
	for i := range rows {
		rows[i] = make([]float64, 6)
		rows[i][i] = 1
	}
	pts, err := dataset.FromRows(rows)
	require.NoError(t, err)

	cs := constraint.NewSet()
	cs.Add(0, 1, constraint.CannotLink)
	cs.Add(0, 2, constraint.CannotLink)
	cs.Add(1, 3, constraint.CannotLink)
	cs.Add(1, 4, constraint.MustLink)
	cs.Add(2, 5, constraint.MustLink)

	p, err := solution.NewProblem(pts, cs, 4)
	require.NoError(t, err)

	return p
}

// randomProblem builds n random 2-D points with a few random constraints.
func randomProblem(t *testing.T, n, k int, rng *rand.Rand) *solution.Problem {
	t.Helper()
	pts := make([]dataset.Point, n)
	for i := range pts {
		pts[i] = dataset.RandomPoint(2, rng)
	}
	dp, err := dataset.NewDataPoints(pts)
	require.NoError(t, err)

	cs := constraint.NewSet()
	for c := 0; c < n/2; c++ {
		typ := constraint.MustLink
		if rng.Intn(2) == 0 {
			typ = constraint.CannotLink
		}
		cs.Add(rng.Intn(n), rng.Intn(n), typ)
	}

	p, err := solution.NewProblem(dp, cs, k)
	require.NoError(t, err)

	return p
}

// mustNew wraps solution.New for fixtures known to be well formed.
func mustNew(t *testing.T, p *solution.Problem, a []int) *solution.Solution {
	t.Helper()
	s, err := solution.New(p, a)
	require.NoError(t, err)

	return s
}

// alternating returns [first, 1-first, first, ...] of length n.
func alternating(n, first int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = (i + first) % 2
	}

	return a
}

// randomRNG returns a fresh generator seeded with seedDet.
func randomRNG() *rand.Rand {
	return rand.New(rand.NewSource(seedDet))
}
