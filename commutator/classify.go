package commutator

import "github.com/quantatlas/manybody/fermion"

// Classify derives op's mode-index set and ShapeTag.
//
// Classification depends only on term structure, never on coefficients,
// so it is stable under nonzero scalar multiplication:
//   - no non-identity terms → ShapeIdentity, empty set
//   - exactly one term, a single excitation between two distinct modes →
//     ShapeHopping with its creation and annihilation modes
//   - every term a product of same-mode occupation-number factors →
//     ShapeNumberDiagonal (a single-mode excitation a†_i a_i lands here,
//     not in ShapeHopping)
//   - anything else → ShapeOther
//
// Complexity: O(total ladder count) time.
func Classify(op *fermion.Operator) (ModeSet, Shape) {
	modes := NewModeSet()
	terms := 0
	allDiagonal := true
	hop := Shape{}
	hopSeen := false

	op.Each(func(term []fermion.Ladder, _ complex128) {
		if len(term) == 0 {
			return // identity component: touches no modes
		}
		terms++
		for _, l := range term {
			modes.Add(l.Mode)
		}
		if diagonalTerm(term) {
			return
		}
		allDiagonal = false
		if create, annihilate, ok := hoppingTerm(term); ok {
			hop = Shape{Tag: ShapeHopping, Create: create, Annihilate: annihilate, Terms: 1}
			hopSeen = true
		}
	})

	switch {
	case terms == 0:
		return modes, Shape{Tag: ShapeIdentity}
	case allDiagonal:
		return modes, Shape{Tag: ShapeNumberDiagonal, Terms: terms}
	case terms == 1 && hopSeen:
		return modes, hop
	default:
		return modes, Shape{Tag: ShapeOther, Terms: terms}
	}
}

// diagonalTerm reports whether a ladder product is diagonal in the
// occupation basis: every touched mode is raised exactly once and lowered
// exactly once, so the product preserves each mode's occupation.
func diagonalTerm(term []fermion.Ladder) bool {
	raised := map[int]int{}
	lowered := map[int]int{}
	for _, l := range term {
		if l.Raised {
			raised[l.Mode]++
		} else {
			lowered[l.Mode]++
		}
	}

	if len(raised) != len(lowered) {
		return false
	}
	for m, n := range raised {
		if n != 1 || lowered[m] != 1 {
			return false
		}
	}

	return true
}

// hoppingTerm reports whether a ladder product is a single excitation
// between two distinct modes, returning its creation and annihilation
// modes.
func hoppingTerm(term []fermion.Ladder) (create, annihilate int, ok bool) {
	if len(term) != 2 || term[0].Raised == term[1].Raised {
		return 0, 0, false
	}

	for _, l := range term {
		if l.Raised {
			create = l.Mode
		} else {
			annihilate = l.Mode
		}
	}
	if create == annihilate {
		return 0, 0, false // same-mode excitation is a number operator
	}

	return create, annihilate, true
}
