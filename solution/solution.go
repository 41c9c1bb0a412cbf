// SPDX-License-Identifier: MIT

package solution

import (
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cclust/dataset"
)

// Solution is one assignment of points to clusters with a cached fitness.
type Solution struct {
	problem    *Problem
	assignment []int
	fitness    float64
	cached     bool
}

// New builds a Solution from an explicit assignment. The slice is copied.
// The result may be invalid (empty clusters); see IsValid and Repair.
func New(p *Problem, assignment []int) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if len(assignment) != p.N() {
		return nil, ErrLengthMismatch
	}
	for _, c := range assignment {
		if c < 0 || c >= p.k {
			return nil, ErrClusterOutOfRange
		}
	}

	return &Solution{problem: p, assignment: slices.Clone(assignment)}, nil
}

// Random draws every cluster id uniformly and repairs the result, so the
// returned Solution is always valid.
func Random(p *Problem, rng *rand.Rand) *Solution {
	a := make([]int, p.N())
	var i int
	for i = range a {
		a[i] = rng.Intn(p.k)
	}
	s := &Solution{problem: p, assignment: a}
	s.Repair(rng)

	return s
}

// derive returns a copy with an empty cache, ready to be modified.
func (s *Solution) derive() *Solution {
	return &Solution{problem: s.problem, assignment: slices.Clone(s.assignment)}
}

// Clone returns a deep copy, cache included.
func (s *Solution) Clone() *Solution {
	c := s.derive()
	c.fitness, c.cached = s.fitness, s.cached

	return c
}

// Problem returns the shared context.
func (s *Solution) Problem() *Problem { return s.problem }

// Assignment returns a copy of the assignment vector.
func (s *Solution) Assignment() []int { return slices.Clone(s.assignment) }

// ClusterOf returns the cluster of point i.
func (s *Solution) ClusterOf(i int) int { return s.assignment[i] }

// Len returns the number of points.
func (s *Solution) Len() int { return len(s.assignment) }

// K returns the number of clusters.
func (s *Solution) K() int { return s.problem.k }

// Lambda returns the penalty weight.
func (s *Solution) Lambda() float64 { return s.problem.lambda }

// Cached reports whether the fitness is already known.
func (s *Solution) Cached() bool { return s.cached }

// Equal reports whether both assignments are identical.
func (s *Solution) Equal(other *Solution) bool {
	return slices.Equal(s.assignment, other.assignment)
}

// set changes the cluster of point i and drops the cache.
func (s *Solution) set(i, c int) {
	s.assignment[i] = c
	s.cached = false
}

// ClusterSizes returns the number of points in each cluster.
func (s *Solution) ClusterSizes() []int {
	sizes := make([]int, s.problem.k)
	for _, c := range s.assignment {
		sizes[c]++
	}

	return sizes
}

// EmptyClusters returns the ids of clusters without points, ascending.
func (s *Solution) EmptyClusters() []int {
	var empty []int
	for c, n := range s.ClusterSizes() {
		if n == 0 {
			empty = append(empty, c)
		}
	}

	return empty
}

// PointsInCluster returns the indexes of the points assigned to c, ascending.
func (s *Solution) PointsInCluster(c int) []int {
	var idx []int
	for i, ci := range s.assignment {
		if ci == c {
			idx = append(idx, i)
		}
	}

	return idx
}

// IsValid reports whether the length matches and no cluster is empty.
func (s *Solution) IsValid() bool {
	if len(s.assignment) != s.problem.N() {
		return false
	}
	for _, n := range s.ClusterSizes() {
		if n == 0 {
			return false
		}
	}

	return true
}

// Centroid returns the centroid of cluster c. Panics if c is empty.
func (s *Solution) Centroid(c int) dataset.Point {
	centroid, err := dataset.Centroid(s.problem.points.Subset(s.PointsInCluster(c)))
	if err != nil {
		panic("solution: centroid of empty cluster")
	}

	return centroid
}

// IntraClusterDistance is the mean distance of the members of c to their
// centroid. Panics if c is empty.
func (s *Solution) IntraClusterDistance(c int) float64 {
	members := s.problem.points.Subset(s.PointsInCluster(c))
	centroid, err := dataset.Centroid(members)
	if err != nil {
		panic("solution: intra-cluster distance of empty cluster")
	}
	d := make([]float64, len(members))
	for i, p := range members {
		d[i] = dataset.Distance(p, centroid)
	}

	return stat.Mean(d, nil)
}

// GlobalClusterDistance is the unweighted mean of every cluster's
// intra-cluster distance.
func (s *Solution) GlobalClusterDistance() float64 {
	d := make([]float64, s.problem.k)
	var c int
	for c = range d {
		d[c] = s.IntraClusterDistance(c)
	}

	return stat.Mean(d, nil)
}

// Infeasibility counts violated constraints.
func (s *Solution) Infeasibility() int {
	return s.problem.constraints.Violations(s.assignment)
}

// Fitness returns the cached value, computing it on first use.
func (s *Solution) Fitness() float64 {
	f, _ := s.FitnessAndConsumed()

	return f
}

// FitnessAndConsumed returns the fitness and 1 if it had to be computed,
// 0 if it came from the cache.
func (s *Solution) FitnessAndConsumed() (float64, int) {
	if s.cached {
		return s.fitness, 0
	}
	s.fitness = s.GlobalClusterDistance() + s.problem.lambda*float64(s.Infeasibility())
	s.cached = true

	return s.fitness, 1
}
