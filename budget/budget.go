// SPDX-License-Identifier: MIT

// Package budget accounts for fitness evaluations.
//
// Every fitness computation that is not served from a solution's cache costs
// one evaluation. Operators report what they consumed by returning an
// Evaluated value; drivers add those costs to a Ledger and stop once the
// ledger is exhausted. The ledger may overshoot its limit by the cost of the
// last charged step: it is checked between steps, never inside one.
package budget

// Evaluated pairs a result with the number of fitness evaluations it cost.
type Evaluated[T any] struct {
	Value       T
	Evaluations int
}

// Of builds an Evaluated value.
func Of[T any](v T, evaluations int) Evaluated[T] {
	return Evaluated[T]{Value: v, Evaluations: evaluations}
}

// Ledger tracks evaluations consumed against a fixed limit.
type Ledger struct {
	limit int
	used  int
}

// NewLedger returns a ledger allowing limit evaluations. Negative limits
// are treated as zero.
func NewLedger(limit int) *Ledger {
	if limit < 0 {
		limit = 0
	}

	return &Ledger{limit: limit}
}

// Charge records n consumed evaluations.
func (l *Ledger) Charge(n int) { l.used += n }

// Limit returns the configured cap.
func (l *Ledger) Limit() int { return l.limit }

// Used returns the evaluations consumed so far.
func (l *Ledger) Used() int { return l.used }

// Remaining returns the evaluations left, never negative.
func (l *Ledger) Remaining() int {
	if l.used >= l.limit {
		return 0
	}

	return l.limit - l.used
}

// Exhausted reports whether the limit has been reached.
func (l *Ledger) Exhausted() bool { return l.used >= l.limit }
