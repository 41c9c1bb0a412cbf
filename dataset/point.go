// SPDX-License-Identifier: MIT

package dataset

import (
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Point is an immutable vector of real coordinates.
type Point struct {
	coords []float64
}

// NewPoint copies coords into a new Point.
func NewPoint(coords ...float64) Point {
	return Point{coords: slices.Clone(coords)}
}

// RandomPoint returns a point of dimension dim with coordinates uniform in [0,1).
func RandomPoint(dim int, rng *rand.Rand) Point {
	c := make([]float64, dim)
	var i int
	for i = range c {
		c[i] = rng.Float64()
	}

	return Point{coords: c}
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p.coords) }

// At returns coordinate i.
func (p Point) At(i int) float64 { return p.coords[i] }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 { return slices.Clone(p.coords) }

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool { return slices.Equal(p.coords, q.coords) }

// DistanceTo is shorthand for Distance(p, q).
func (p Point) DistanceTo(q Point) float64 { return Distance(p, q) }

// Distance returns the Euclidean distance between a and b.
// Panics if the dimensions differ; DataPoints guarantees they never do.
func Distance(a, b Point) float64 {
	return floats.Distance(a.coords, b.coords, 2)
}

// Centroid returns the component-wise mean of points.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrEmptySet
	}
	dim := points[0].Dim()
	sum := make([]float64, dim)
	for _, p := range points {
		if p.Dim() != dim {
			return Point{}, ErrDimensionMismatch
		}
		floats.Add(sum, p.coords)
	}
	floats.Scale(1/float64(len(points)), sum)

	return Point{coords: sum}, nil
}

// MaxPairDistance returns the largest distance between two distinct points,
// or 0 when fewer than two points are given.
func MaxPairDistance(points []Point) float64 {
	var (
		best float64
		i, j int
	)
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d > best {
				best = d
			}
		}
	}

	return best
}
