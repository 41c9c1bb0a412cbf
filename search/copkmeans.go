// SPDX-License-Identifier: MIT

package search

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
	"github.com/katalvlaran/cclust/internal/randutil"
	"github.com/katalvlaran/cclust/solution"
)

// COPKMeans is constrained greedy k-means.
//
// Each iteration visits the points in random order and assigns every point
// to the cluster that violates the fewest constraints against the previous
// iteration's assignment, breaking ties by the nearest centroid; centroids
// are then recomputed. The classic variant seeds centroids uniformly in
// [0,1)^d and iterates until they stop moving (bounded by
// WithMaxKMeansIterations); the robust variant seeds them with distinct data
// points and stops after WithRobustIterations iterations at most.
//
// An iteration that leaves a cluster empty abandons the attempt and restarts
// with new centroids. ErrResetsExhausted is returned after WithMaxResets
// abandoned attempts. Fitness is computed for the trace only and is not
// budgeted.
func COPKMeans(p *solution.Problem, rng *rand.Rand, robust bool, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	o := gatherOptions(opts...)
	res := Result{Algorithm: COPKMeansClassic}
	maxIter := o.maxKMeansIterations
	if robust {
		res.Algorithm = COPKMeansRobust
		maxIter = o.robustIterations
	}

	for res.Resets = 0; res.Resets < o.maxResets; res.Resets++ {
		best, trace, ok := copKMeansAttempt(p, rng, robust, maxIter)
		if ok {
			res.Best, res.Trace, res.Generations = best, trace, len(trace)
			o.logger.Info("copkmeans finished",
				zap.Bool("robust", robust),
				zap.Int("iterations", res.Generations),
				zap.Int("resets", res.Resets),
				zap.Float64("fitness", best.Fitness()))

			return res, nil
		}
		o.logger.Debug("copkmeans left a cluster empty, resetting", zap.Int("reset", res.Resets+1))
	}
	o.logger.Warn("copkmeans resets exhausted", zap.Int("resets", o.maxResets))

	return res, ErrResetsExhausted
}

func copKMeansAttempt(p *solution.Problem, rng *rand.Rand, robust bool, maxIter int) (*solution.Solution, []float64, bool) {
	points := p.Points()
	k := p.K()

	var centroids []dataset.Point
	if robust {
		centroids = points.Subset(randutil.Perm(points.Len(), rng)[:k])
	} else {
		dim, _ := points.Dimension()
		centroids = make([]dataset.Point, k)
		for c := range centroids {
			centroids[c] = dataset.RandomPoint(dim, rng)
		}
	}

	prev := make([]int, points.Len())
	var (
		trace []float64
		cur   *solution.Solution
		it    int
	)
	for it = 0; it < maxIter; it++ {
		next := assignPoints(p, prev, centroids, rng)
		s, err := solution.New(p, next)
		if err != nil || !s.IsValid() {
			return nil, nil, false
		}
		moved := make([]dataset.Point, k)
		for c := range moved {
			moved[c] = s.Centroid(c)
		}
		changed := centroidsDiffer(centroids, moved)
		prev, centroids, cur = next, moved, s
		trace = append(trace, s.Fitness())
		if !changed {
			break
		}
	}

	return cur, trace, true
}

// assignPoints visits points in random order and returns the new assignment.
func assignPoints(p *solution.Problem, prev []int, centroids []dataset.Point, rng *rand.Rand) []int {
	points := p.Points()
	next := make([]int, points.Len())
	for _, i := range randutil.Perm(points.Len(), rng) {
		next[i] = selectBestCluster(prev, p.K(), p.Constraints(), i, points.At(i), centroids)
	}

	return next
}

// violationsPerCluster counts, for each candidate cluster of point, the
// constraints of point broken against the assignment prev.
func violationsPerCluster(prev []int, k int, cs *constraint.Set, point int) []int {
	v := make([]int, k)
	var c int
	for _, l := range cs.Links(point) {
		for c = 0; c < k; c++ {
			if l.Type.Violated(prev[l.Other], c) {
				v[c]++
			}
		}
	}

	return v
}

// selectBestCluster returns the cluster with fewest violations for point,
// the nearest centroid among ties, the lowest id among equal distances.
func selectBestCluster(prev []int, k int, cs *constraint.Set, point int, at dataset.Point, centroids []dataset.Point) int {
	v := violationsPerCluster(prev, k, cs, point)
	best := 0
	bestD := dataset.Distance(at, centroids[0])
	var c int
	for c = 1; c < k; c++ {
		switch {
		case v[c] < v[best]:
			best, bestD = c, dataset.Distance(at, centroids[c])
		case v[c] == v[best]:
			if d := dataset.Distance(at, centroids[c]); d < bestD {
				best, bestD = c, d
			}
		}
	}

	return best
}

// centroidsDiffer reports whether any centroid moved.
func centroidsDiffer(a, b []dataset.Point) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return true
		}
	}

	return false
}
