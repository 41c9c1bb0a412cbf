package search_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
	"github.com/katalvlaran/cclust/search"
	"github.com/katalvlaran/cclust/solution"
)

// ExampleRun separates two groups of points on a line with local search.
// Every other valid split has an improving move, so the search always ends
// on the natural grouping.
func ExampleRun() {
	pts, _ := dataset.FromRows([][]float64{{0}, {1}, {10}, {11}})
	cs := constraint.NewSet()
	cs.Add(0, 1, constraint.MustLink)

	p, _ := solution.NewProblem(pts, cs, 2)
	res, err := search.Run(p, rand.New(rand.NewSource(1)), search.LocalSearchAlgo)
	if err != nil {
		fmt.Println(err)
		return
	}
	best := res.Best
	fmt.Printf("together=%v infeasibility=%d fitness=%.2f\n",
		best.ClusterOf(2) == best.ClusterOf(3), best.Infeasibility(), best.Fitness())
	// Output:
	// together=true infeasibility=0 fitness=0.50
}
