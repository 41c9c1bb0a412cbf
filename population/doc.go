// SPDX-License-Identifier: MIT

// Package population implements the genetic operators over an ordered set of
// solutions sharing one problem.
//
// Operators never modify the receiver: each returns a new Population, except
// Set (single-slot replacement) and EvaluateAll (which only fills fitness
// caches). Individuals are shared by pointer between populations; this is
// safe because no operator changes an existing individual's assignment.
//
// Every operator that may compute fitness returns a budget.Evaluated value
// holding the number of evaluations it consumed:
//
//	SelectBinaryTournament    ≤ 4 per drawn pair on an unevaluated population
//	CrossUniform/CrossSegment 0 (children are evaluated later)
//	PreserveBestPastParent    0 when the previous generation is evaluated
//	CompeteWithNewIndividuals cost of the children plus any unevaluated worst
//	SoftLocalSearch           sum over the refined individuals
//
// Individuals and the random generator follow the solution package's
// concurrency rules: no sharing across goroutines.
package population
