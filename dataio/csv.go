// SPDX-License-Identifier: MIT

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cclust/constraint"
	"github.com/katalvlaran/cclust/dataset"
)

// readRecords reads every row, enforcing a constant field count.
func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	records, err := cr.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %v", ErrRaggedRows, err)
		}
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	return records, nil
}

// ReadPoints parses a point file.
func ReadPoints(r io.Reader) (*dataset.DataPoints, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d field %d: %q", ErrBadNumber, i+1, j+1, field)
			}
			rows[i][j] = v
		}
	}

	return dataset.FromRows(rows)
}

// ReadConstraints parses an n×n constraint matrix.
func ReadConstraints(r io.Reader, n int) (*constraint.Set, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records) != n || len(records[0]) != n {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShape, len(records), len(records[0]), n, n)
	}

	m := mat.NewDense(n, n, nil)
	for i, rec := range records {
		for j, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d field %d: %q", ErrBadNumber, i+1, j+1, field)
			}
			m.Set(i, j, float64(v))
		}
	}

	return constraint.FromMatrix(m)
}

// LoadPoints opens and parses a point file.
func LoadPoints(path string) (*dataset.DataPoints, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("read points %s: %w", path, err)
	}

	return pts, nil
}

// LoadConstraints opens and parses a constraint file for n points.
func LoadConstraints(path string, n int) (*constraint.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cs, err := ReadConstraints(f, n)
	if err != nil {
		return nil, fmt.Errorf("read constraints %s: %w", path, err)
	}

	return cs, nil
}
