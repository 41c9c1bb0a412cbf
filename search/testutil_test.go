// Package search_test provides helpers shared across *_test.go files in
// this package.
package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
	"github.com/katalvlaran/cclust/search"
	"github.com/katalvlaran/cclust/solution"
)

const (
	seedDet = int64(31415)

	// smallBudget keeps driver tests fast.
	smallBudget = 3000
)

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

func newRNG() *rand.Rand { return rand.New(rand.NewSource(seedDet)) }

// blobsProblem builds three well separated 2-D blobs of size per points each,
// with must-links inside blobs and cannot-links across them, k=3.
func blobsProblem(t testing.TB, per int) *solution.Problem {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	centres := [][2]float64{{0, 0}, {10, 0}, {0, 10}}
	var rows [][]float64
	for _, c := range centres {
		for i := 0; i < per; i++ {
			rows = append(rows, []float64{c[0] + rng.Float64(), c[1] + rng.Float64()})
		}
	}
	pts, err := dataset.FromRows(rows)
	require.NoError(t, err)

	cs := constraint.NewSet()
	for b := 0; b < 3; b++ {
		cs.Add(b*per, b*per+1, constraint.MustLink)
		cs.Add(b*per, ((b+1)%3)*per, constraint.CannotLink)
	}
	p, err := solution.NewProblem(pts, cs, 3)
	require.NoError(t, err)

	return p
}

// fastOptions shrinks every budget for tests.
func fastOptions() []search.Option {
	return []search.Option{
		search.WithMaxEvaluations(smallBudget),
		search.WithPopulationSize(10),
		search.WithRepetitions(3),
		search.WithRepetitionEvaluations(500),
	}
}

// nonIncreasing reports whether xs never goes up.
func nonIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[i-1] {
			return false
		}
	}

	return true
}
