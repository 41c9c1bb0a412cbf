// SPDX-License-Identifier: MIT

package constraint

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Set is a symmetric collection of relations with deterministic iteration.
type Set struct {
	index   map[Pair]Type
	entries []Entry
	links   map[int][]Link
	ml, cl  int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{
		index: make(map[Pair]Type),
		links: make(map[int][]Link),
	}
}

// Add records t between i and j. It returns false when nothing was stored:
// i == j, or the pair already carries a relation.
// Panics on negative indexes.
func (s *Set) Add(i, j int, t Type) bool {
	if i < 0 || j < 0 {
		panic(ErrNegativeIndex)
	}
	if i == j {
		return false
	}
	p := NewPair(i, j)
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = t
	s.entries = append(s.entries, Entry{Pair: p, Type: t})
	s.links[p.I] = append(s.links[p.I], Link{Other: p.J, Type: t})
	s.links[p.J] = append(s.links[p.J], Link{Other: p.I, Type: t})
	if t == MustLink {
		s.ml++
	} else {
		s.cl++
	}

	return true
}

// Get returns the relation between i and j, in either order.
func (s *Set) Get(i, j int) (Type, bool) {
	t, ok := s.index[NewPair(i, j)]

	return t, ok
}

// Has reports whether any relation exists between i and j.
func (s *Set) Has(i, j int) bool {
	_, ok := s.Get(i, j)

	return ok
}

// Len is the number of stored relations.
func (s *Set) Len() int { return len(s.entries) }

// MustLinks is the number of must-link relations.
func (s *Set) MustLinks() int { return s.ml }

// CannotLinks is the number of cannot-link relations.
func (s *Set) CannotLinks() int { return s.cl }

// Entries returns the relations in insertion order.
func (s *Set) Entries() []Entry { return slices.Clone(s.entries) }

// Links returns the relations touching point i.
func (s *Set) Links(i int) []Link { return slices.Clone(s.links[i]) }

// Violations counts the relations broken by assignment.
// Indexes outside assignment are ignored.
func (s *Set) Violations(assignment []int) int {
	var count int
	for _, e := range s.entries {
		if e.J >= len(assignment) {
			continue
		}
		if e.Type.Violated(assignment[e.I], assignment[e.J]) {
			count++
		}
	}

	return count
}

// FromMatrix builds a Set from an N×N matrix with entries in {-1, 0, 1}.
// Cells are read row-major, so for symmetric input (i, j) is stored with i < j
// in row order.
func FromMatrix(m mat.Matrix) (*Set, error) {
	r, c := m.Dims()
	if r != c {
		return nil, ErrNotSquare
	}
	s := NewSet()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			switch m.At(i, j) {
			case 0:
			case 1:
				s.Add(i, j, MustLink)
			case -1:
				s.Add(i, j, CannotLink)
			default:
				return nil, ErrUnknownValue
			}
		}
	}

	return s, nil
}
