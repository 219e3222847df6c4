// Package commutator: mode sets, shape tags, and term metadata.
package commutator

import "sort"

// ModeSet is the set of mode indices an operator touches, in either
// creation or annihilation role. It carries no role or ordering
// information; pair it with a Shape when roles matter.
type ModeSet map[int]struct{}

// NewModeSet builds a ModeSet from the given mode indices.
func NewModeSet(modes ...int) ModeSet {
	s := make(ModeSet, len(modes))
	for _, m := range modes {
		s[m] = struct{}{}
	}

	return s
}

// Add inserts mode m into the set.
func (s ModeSet) Add(m int) { s[m] = struct{}{} }

// Has reports whether mode m is in the set.
func (s ModeSet) Has(m int) bool {
	_, ok := s[m]

	return ok
}

// Len returns the number of modes in the set.
func (s ModeSet) Len() int { return len(s) }

// Intersects reports whether s and other share at least one mode.
func (s ModeSet) Intersects(other ModeSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for m := range small {
		if large.Has(m) {
			return true
		}
	}

	return false
}

// Intersection returns the modes present in both sets.
func (s ModeSet) Intersection(other ModeSet) ModeSet {
	out := NewModeSet()
	for m := range s {
		if other.Has(m) {
			out.Add(m)
		}
	}

	return out
}

// Union returns the modes present in either set.
func (s ModeSet) Union(other ModeSet) ModeSet {
	out := make(ModeSet, len(s)+len(other))
	for m := range s {
		out.Add(m)
	}
	for m := range other {
		out.Add(m)
	}

	return out
}

// ContainsAll reports whether every mode of other is in s.
func (s ModeSet) ContainsAll(other ModeSet) bool {
	for m := range other {
		if !s.Has(m) {
			return false
		}
	}

	return true
}

// Equal reports whether s and other hold exactly the same modes.
func (s ModeSet) Equal(other ModeSet) bool {
	return len(s) == len(other) && s.ContainsAll(other)
}

// Modes returns the set's contents in ascending order.
func (s ModeSet) Modes() []int {
	out := make([]int, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Ints(out)

	return out
}

// ShapeTag labels the algebraic shape of a fermionic operator as seen by
// the dual-basis triviality predicates.
type ShapeTag int

const (
	// ShapeIdentity marks the identity or zero operator (empty mode set).
	ShapeIdentity ShapeTag = iota

	// ShapeHopping marks a single excitation term a†_i a_j with i ≠ j.
	ShapeHopping

	// ShapeNumberDiagonal marks an operator every term of which is a
	// product of same-mode occupation-number factors — diagonal in the
	// occupation basis, over any number of modes and terms.
	ShapeNumberDiagonal

	// ShapeOther is the fallback for everything else and forces exact
	// computation in every predicate.
	ShapeOther
)

// String implements fmt.Stringer for diagnostics.
func (t ShapeTag) String() string {
	switch t {
	case ShapeIdentity:
		return "Identity"
	case ShapeHopping:
		return "Hopping"
	case ShapeNumberDiagonal:
		return "NumberDiagonal"
	default:
		return "Other"
	}
}

// Shape is the classifier's verdict for one operator. Create and
// Annihilate are meaningful only when Tag is ShapeHopping; Terms counts
// the non-identity terms inspected (a Hopping shape always has exactly
// one).
type Shape struct {
	Tag        ShapeTag
	Create     int
	Annihilate int
	Terms      int
}

// TermInfo bundles the pre-computed classification of one operand:
// its mode-index set and whether it is a hopping operator. Callers
// enumerating Hamiltonian terms classify each term once and pass TermInfo
// into the metadata-driven predicate and DoubleCommutator, amortizing
// classification across O(n²)/O(n³) loops.
type TermInfo struct {
	Indices   ModeSet
	IsHopping bool
}
