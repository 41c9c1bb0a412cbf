package solution_test

import (
	"fmt"

	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
	"github.com/katalvlaran/cclust/solution"
)

// ExampleSolution_Fitness evaluates a hand-made assignment of four points
// on a line with one violated cannot-link.
func ExampleSolution_Fitness() {
	pts, _ := dataset.FromRows([][]float64{{0}, {1}, {10}, {11}})
	cs := constraint.NewSet()
	cs.Add(0, 1, constraint.CannotLink)

	p, _ := solution.NewProblem(pts, cs, 2)
	s, _ := solution.New(p, []int{0, 0, 1, 1})

	fmt.Printf("lambda=%.1f infeasibility=%d distance=%.2f fitness=%.2f\n",
		s.Lambda(), s.Infeasibility(), s.GlobalClusterDistance(), s.Fitness())
	// Output:
	// lambda=11.0 infeasibility=1 distance=0.50 fitness=11.50
}
