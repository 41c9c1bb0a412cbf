// SPDX-License-Identifier: MIT

package dataset

import "slices"

// DataPoints is the ordered, immutable collection of points of an instance.
type DataPoints struct {
	points []Point
	dim    int
}

// NewDataPoints validates that every point shares one non-zero dimension.
// An empty collection is allowed and has no dimension.
func NewDataPoints(points []Point) (*DataPoints, error) {
	dp := &DataPoints{points: slices.Clone(points)}
	if len(points) == 0 {
		return dp, nil
	}
	dp.dim = points[0].Dim()
	if dp.dim == 0 {
		return nil, ErrZeroDimension
	}
	for _, p := range points[1:] {
		if p.Dim() != dp.dim {
			return nil, ErrDimensionMismatch
		}
	}

	return dp, nil
}

// FromRows builds DataPoints from raw coordinate rows.
func FromRows(rows [][]float64) (*DataPoints, error) {
	pts := make([]Point, len(rows))
	for i, r := range rows {
		pts[i] = NewPoint(r...)
	}

	return NewDataPoints(pts)
}

// Len returns the number of points.
func (d *DataPoints) Len() int { return len(d.points) }

// Dimension returns the shared dimension; ok is false for an empty collection.
func (d *DataPoints) Dimension() (dim int, ok bool) {
	return d.dim, len(d.points) > 0
}

// At returns point i.
func (d *DataPoints) At(i int) Point { return d.points[i] }

// Points returns a copy of the point slice. Points themselves are immutable.
func (d *DataPoints) Points() []Point { return slices.Clone(d.points) }

// Subset returns the points at the given indexes, in order.
func (d *DataPoints) Subset(indexes []int) []Point {
	out := make([]Point, len(indexes))
	for i, idx := range indexes {
		out[i] = d.points[idx]
	}

	return out
}

// MaxPairDistance returns the diameter of the collection.
func (d *DataPoints) MaxPairDistance() float64 { return MaxPairDistance(d.points) }
