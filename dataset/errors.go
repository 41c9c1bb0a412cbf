// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrDimensionMismatch is returned when points of different lengths are mixed.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")

	// ErrEmptySet is returned when an operation needs at least one point.
	ErrEmptySet = errors.New("dataset: empty point set")

	// ErrZeroDimension is returned when a point has no coordinates.
	ErrZeroDimension = errors.New("dataset: point has zero dimension")
)
