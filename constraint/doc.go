// SPDX-License-Identifier: MIT

// Package constraint stores pairwise must-link / cannot-link relations
// between point indexes.
//
// A Set is symmetric: (i, j) and (j, i) name the same relation and are stored
// once under the normalized Pair{I: min, J: max}. Two rules apply on insert:
//   - self pairs (i, i) are trivially satisfied and are dropped;
//   - the first relation recorded for a pair wins, later ones are ignored.
//
// Iteration order (Entries) is insertion order, so every consumer that walks
// the relations (fitness, COP-KMeans) is deterministic for a fixed input.
//
// FromMatrix reads the N×N encoding used by the constraint files:
// 1 → MustLink, -1 → CannotLink, 0 → no relation.
package constraint
