// SPDX-License-Identifier: MIT

package solution

import (
	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
)

// Problem is the immutable context shared by all solutions of a run.
type Problem struct {
	points      *dataset.DataPoints
	constraints *constraint.Set
	k           int
	lambda      float64
}

// NewProblem validates the instance and computes lambda once.
// A nil constraint set is treated as empty.
func NewProblem(points *dataset.DataPoints, constraints *constraint.Set, k int) (*Problem, error) {
	if k < 2 {
		return nil, ErrInvalidClusterCount
	}
	if points == nil || points.Len() < k {
		return nil, ErrTooFewPoints
	}
	if constraints == nil {
		constraints = constraint.NewSet()
	}
	for _, e := range constraints.Entries() {
		if e.J >= points.Len() {
			return nil, ErrConstraintOutOfRange
		}
	}

	p := &Problem{points: points, constraints: constraints, k: k}
	if constraints.Len() > 0 {
		p.lambda = points.MaxPairDistance() / float64(constraints.Len())
	}

	return p, nil
}

// Points returns the dataset.
func (p *Problem) Points() *dataset.DataPoints { return p.points }

// Constraints returns the constraint set.
func (p *Problem) Constraints() *constraint.Set { return p.constraints }

// K returns the number of clusters.
func (p *Problem) K() int { return p.k }

// N returns the number of points.
func (p *Problem) N() int { return p.points.Len() }

// Lambda returns the infeasibility penalty weight.
func (p *Problem) Lambda() float64 { return p.lambda }
