// SPDX-License-Identifier: MIT

// Package dataio reads problem instances from CSV and writes run artifacts.
//
// Inputs:
//   - Point file: CSV without header, one point per row, one coordinate per
//     field. Every row must have the same number of fields.
//   - Constraint file: CSV without header, an N×N integer matrix where N is
//     the number of points; 1 is must-link, -1 cannot-link, 0 no relation.
//
// Outputs:
//   - Fitness trace as a 1-D float64 .npy array, for offline plotting.
//   - Run report encoded with MessagePack, identified by a random UUID.
//
// Errors are wrapped with the failing row where available; match the
// sentinels below with errors.Is.
package dataio
