// SPDX-License-Identifier: MIT

// Package dataset holds the immutable geometry the clustering searches run on.
//
// A Point is a fixed-length vector of float64 coordinates; DataPoints is the
// ordered, read-only collection of points a problem instance is built from.
// Point order is significant: every other package addresses points by their
// index in DataPoints.
//
// Geometry:
//   - Distance is the Euclidean (L2) distance between two points of equal
//     dimension, computed with gonum/floats.
//   - Centroid is the component-wise mean of a non-empty set of points.
//   - MaxPairDistance is the largest distance over all unordered pairs and is
//     used to scale the infeasibility penalty.
//
// Contracts:
//   - All points of a DataPoints share the same dimension (validated by
//     NewDataPoints, ErrDimensionMismatch otherwise).
//   - Points are never mutated after construction; accessors return copies
//     where a caller could otherwise alias internal storage.
//
// Complexity:
//   - Distance O(d), Centroid O(m·d), MaxPairDistance O(n²·d).
package dataset
