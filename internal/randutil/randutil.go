// SPDX-License-Identifier: MIT

// Package randutil centralizes the deterministic random helpers shared by the
// solution, population and search packages.
//
// Every helper takes the caller's *rand.Rand explicitly; there is no package
// level generator. A fixed seed therefore reproduces a whole run.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package randutil

import "math/rand"

// DefaultSeed is used by New when the caller passes seed==0.
const DefaultSeed int64 = 1

// New returns a deterministic generator. seed==0 maps to DefaultSeed.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a shuffled permutation of 0..n-1. n<=0 yields an empty slice.
func Perm(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	var i int
	for i = range p {
		p[i] = i
	}
	Shuffle(p, rng)

	return p
}

// Choose returns a uniformly random element of a. Panics on an empty slice.
func Choose(a []int, rng *rand.Rand) int {
	return a[rng.Intn(len(a))]
}

// IntnExcept returns a uniform value in [0,n) different from skip.
// Requires n >= 2 and 0 <= skip < n.
func IntnExcept(n, skip int, rng *rand.Rand) int {
	v := rng.Intn(n - 1)
	if v >= skip {
		v++
	}

	return v
}
