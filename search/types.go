// SPDX-License-Identifier: MIT

package search

import (
	"github.com/katalvlaran/cclust/solution"
)

// Algorithm names a driver. The values are the names accepted on the
// command line.
type Algorithm string

const (
	COPKMeansClassic          Algorithm = "copkmeans"
	COPKMeansRobust           Algorithm = "copkmeans_robust"
	LocalSearchAlgo           Algorithm = "local_search"
	GenerationalUniform       Algorithm = "gguniform"
	GenerationalSegment       Algorithm = "ggsegment"
	SteadyStateUniform        Algorithm = "gsuniform"
	SteadyStateSegment        Algorithm = "gssegment"
	MemeticAll                Algorithm = "memeall"
	MemeticRandom             Algorithm = "memerandom"
	MemeticElitist            Algorithm = "memeelitist"
	MultistartLocalSearchAlgo Algorithm = "multistartlocalsearch"
	IteratedLocalSearchAlgo   Algorithm = "iterative_local_search"
	IteratedAnnealing         Algorithm = "iterative_local_search_annealing"
	SimulatedAnnealingAlgo    Algorithm = "simulated_annealing"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		COPKMeansClassic, COPKMeansRobust, LocalSearchAlgo,
		GenerationalUniform, GenerationalSegment,
		SteadyStateUniform, SteadyStateSegment,
		MemeticAll, MemeticRandom, MemeticElitist,
		MultistartLocalSearchAlgo, IteratedLocalSearchAlgo, IteratedAnnealing,
		SimulatedAnnealingAlgo,
	}
}

// ParseAlgorithm validates a name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}

	return "", ErrUnknownAlgorithm
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Crossover selects the recombination operator of the genetic drivers.
type Crossover int

const (
	// UniformCrossover splits genes into two random halves.
	UniformCrossover Crossover = iota
	// SegmentCrossover keeps a random segment of the first parent.
	SegmentCrossover
)

// String implements fmt.Stringer.
func (c Crossover) String() string {
	if c == SegmentCrossover {
		return "segment"
	}

	return "uniform"
}

// Refiner selects the improvement step of iterated local search.
type Refiner int

const (
	// RefineLocalSearch refines with first-improvement local search.
	RefineLocalSearch Refiner = iota
	// RefineAnnealing refines with simulated annealing.
	RefineAnnealing
)

// Result is the outcome of one run.
type Result struct {
	Algorithm Algorithm
	// Best is the returned solution. It is always valid.
	Best *solution.Solution
	// Evaluations is the number of fitness evaluations consumed.
	Evaluations int
	// Trace holds one fitness value per main-loop iteration.
	Trace []float64
	// Temperatures is the annealing schedule, one value per cooling step.
	Temperatures []float64
	// Generations counts genetic generations or steady-state steps.
	Generations int
	// Resets counts COP-KMeans attempts abandoned for an empty cluster.
	Resets int
}
