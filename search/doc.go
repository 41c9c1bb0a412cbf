// SPDX-License-Identifier: MIT

// Package search runs the constrained clustering metaheuristics.
//
// Every driver takes the shared *solution.Problem, the caller's *rand.Rand
// and functional options, and returns a Result holding the best solution
// found, the fitness evaluations spent and a fitness trace (one value per
// iteration of the driver's main loop).
//
// Drivers:
//   - LocalSearch: first-improvement hill climbing from a random solution.
//   - SimulatedAnnealing: random single moves, Cauchy-like cooling
//     T ← T/(1+β·T), best-ever solution returned.
//   - GenerationalGenetic: tournament → crossover → mutation → elitism.
//   - SteadyStateGenetic: two children per step replace the worst individuals.
//   - Memetic: generational search with a soft local search every few generations.
//   - IteratedLocalSearch: hard mutation of the incumbent, refined by local
//     search or simulated annealing.
//   - MultistartLocalSearch: independent local searches from random solutions.
//   - COPKMeans: constrained greedy k-means with bounded restarts.
//
// Run dispatches on an Algorithm name, the names accepted by the cclust CLI.
//
// Budget:
//
//	Evaluations are counted in uncached fitness computations (package budget).
//	Drivers check the ledger between steps, so a run may overshoot the
//	limit by the cost of its last step (one generation, one neighbour scan).
//	COPKMeans is not budgeted.
//
// Determinism:
//
//	All randomness comes from the rng argument. A fixed seed reproduces a run.
package search
