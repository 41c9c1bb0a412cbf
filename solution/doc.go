// SPDX-License-Identifier: MIT

// Package solution models one cluster assignment over a constrained
// clustering instance, together with every single-individual operator the
// searches build on.
//
// Problem is the shared, immutable context of a run: the points, the
// constraint set, the number of clusters K and the penalty weight lambda.
// It is built once and referenced by every Solution of the run.
//
// A Solution is an assignment vector (position i holds the cluster of point i)
// plus a fitness cache. It is valid when the vector length equals the number
// of points and every cluster id in [0, K) owns at least one point.
//
// Fitness:
//
//	fitness(S) = mean_c( mean_{p in c} ‖p − centroid(c)‖ ) + lambda·infeasibility(S)
//	lambda     = maxPairDistance / |constraints|   (0 when there are no constraints)
//
// Lower is better. The value is cached per Solution and the cache is dropped
// by every operation that changes the assignment. FitnessAndConsumed reports
// 1 consumed evaluation on a cache miss and 0 on a hit; that count is the unit
// of the evaluation budget (package budget).
//
// Operators:
//   - Repair: refill empty clusters from random donors holding ≥2 points.
//   - Moves: FirstImprovingNeighbour (local search), RandomNeighbour (annealing).
//   - Genetic: BinaryTournament, UniformCross, SegmentCross, Mutated.
//   - Refinement: SoftLocalSearch (memetic), HardMutated (iterated local search).
//
// Every random decision draws from the *rand.Rand passed by the caller.
// Solutions are not safe for concurrent use: Fitness writes the cache.
package solution
