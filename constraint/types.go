// SPDX-License-Identifier: MIT

package constraint

// Type is the kind of pairwise relation.
type Type int

const (
	// MustLink requires both points to share a cluster.
	MustLink Type = iota
	// CannotLink requires the points to be in different clusters.
	CannotLink
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case MustLink:
		return "must-link"
	case CannotLink:
		return "cannot-link"
	default:
		return "unknown"
	}
}

// Violated reports whether a relation of type t is broken when the two
// endpoints sit in clusters a and b.
func (t Type) Violated(a, b int) bool {
	if t == MustLink {
		return a != b
	}

	return a == b
}

// Pair is an unordered pair of point indexes, normalized so that I < J.
type Pair struct {
	I, J int
}

// NewPair normalizes (i, j).
func NewPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}

	return Pair{I: i, J: j}
}

// Entry is one stored relation.
type Entry struct {
	Pair
	Type Type
}

// Link is a relation seen from one endpoint.
type Link struct {
	Other int
	Type  Type
}
