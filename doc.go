// Package cclust partitions points into K clusters under pairwise must-link
// and cannot-link constraints, using local search and metaheuristics.
//
// The objective of a candidate partition is
//
//	fitness = mean intra-cluster distance + λ·infeasibility
//
// where infeasibility counts the violated constraints and λ is the largest
// pairwise point distance divided by the number of constraints. Lower is
// better. Every search except COP-KMeans spends an explicit budget of
// fitness evaluations.
//
// Packages:
//
//	dataset/      Point and DataPoints, Euclidean geometry (gonum/floats)
//	constraint/   must-link / cannot-link sets, matrix ingestion (gonum/mat)
//	budget/       evaluation ledger shared by every driver
//	solution/     assignment, fitness cache, repair, neighbours, genetic operators
//	population/   selection, crossover, mutation, replacement, soft local search
//	search/       drivers: local search, annealing, genetic, memetic,
//	              iterated and multistart local search, COP-KMeans
//	dataio/       CSV input, .npy fitness traces, MessagePack run reports
//	config/       TOML run settings
//	logutil/      zap logger with lumberjack rotation
//	cmd/cclust    command line front end
//
// Quick start:
//
//	points, _ := dataset.FromRows(rows)
//	cs := constraint.NewSet()
//	cs.Add(0, 1, constraint.MustLink)
//	p, _ := solution.NewProblem(points, cs, 3)
//	res, _ := search.Run(p, rand.New(rand.NewSource(1)), search.MemeticElitist)
//	fmt.Println(res.Best.Fitness(), res.Best.Infeasibility())
//
// Randomness is never global: every operation takes the *rand.Rand it
// draws from, so a run is reproducible from its seed.
package cclust
