// SPDX-License-Identifier: MIT

package dataio

import "errors"

var (
	// ErrEmptyInput is returned for a CSV file without rows.
	ErrEmptyInput = errors.New("dataio: empty input")

	// ErrRaggedRows is returned when rows have different field counts.
	ErrRaggedRows = errors.New("dataio: rows have different field counts")

	// ErrBadNumber is returned when a field is not a number.
	ErrBadNumber = errors.New("dataio: malformed number")

	// ErrShape is returned when the constraint matrix is not N×N.
	ErrShape = errors.New("dataio: constraint matrix shape mismatch")
)
