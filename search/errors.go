// SPDX-License-Identifier: MIT

package search

import "errors"

var (
	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for an
	// unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrResetsExhausted is returned by COPKMeans when every attempt left a
	// cluster empty.
	ErrResetsExhausted = errors.New("search: copkmeans resets exhausted")

	// ErrNilProblem is returned when a nil *solution.Problem is supplied.
	ErrNilProblem = errors.New("search: nil problem")
)
