// SPDX-License-Identifier: MIT

package constraint

import "errors"

var (
	// ErrNotSquare is returned when a constraint matrix is not N×N.
	ErrNotSquare = errors.New("constraint: matrix is not square")

	// ErrUnknownValue is returned for matrix cells other than -1, 0 or 1.
	ErrUnknownValue = errors.New("constraint: unknown matrix value")

	// ErrNegativeIndex is returned when a relation names a negative point index.
	ErrNegativeIndex = errors.New("constraint: negative point index")
)
