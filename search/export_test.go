package search

// Exported for tests.
var (
	ViolationsPerCluster = violationsPerCluster
	SelectBestCluster    = selectBestCluster
	CentroidsDiffer      = centroidsDiffer
	Rejected             = rejected
)

// Resolved exposes the option fields checked by tests.
func Resolved(opts ...Option) (maxEvaluations, populationSize int, crossover, mutation float64) {
	o := gatherOptions(opts...)
	return o.maxEvaluations, o.populationSize, o.crossoverProbability, o.mutationRate
}
