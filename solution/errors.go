// SPDX-License-Identifier: MIT

package solution

import "errors"

var (
	// ErrInvalidClusterCount is returned when K < 2.
	ErrInvalidClusterCount = errors.New("solution: number of clusters must be at least 2")

	// ErrTooFewPoints is returned when the dataset holds fewer points than clusters.
	ErrTooFewPoints = errors.New("solution: fewer points than clusters")

	// ErrConstraintOutOfRange is returned when a constraint names a point
	// outside the dataset.
	ErrConstraintOutOfRange = errors.New("solution: constraint references unknown point")

	// ErrLengthMismatch is returned when an assignment length differs from the
	// number of points.
	ErrLengthMismatch = errors.New("solution: assignment length mismatch")

	// ErrClusterOutOfRange is returned when an assignment holds an id outside [0, K).
	ErrClusterOutOfRange = errors.New("solution: cluster id out of range")

	// ErrNilProblem is returned when a nil *Problem is supplied.
	ErrNilProblem = errors.New("solution: nil problem")
)
