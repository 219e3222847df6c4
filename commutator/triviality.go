package commutator

import "github.com/quantatlas/manybody/fermion"

// Triviality predicates — combinatorial zero-detection
//
// Description:
//
//	In the dual (plane-wave) basis every Hamiltonian term is either a
//	hopping operator a†_i a_j or a diagonal product of occupation-number
//	factors. For those two shapes, whether a (double) commutator vanishes
//	can be decided from mode-index overlap and role information alone.
//
//	Every predicate here is a sound one-sided test: a true answer proves
//	the commutator is exactly zero; a false answer proves nothing and the
//	caller falls back to exact symbolic computation. Operators classified
//	ShapeOther therefore always yield false on any overlap.
//
// Complexity: O(|IndexSet|) set operations per call; no operator
// arithmetic is ever performed.

// TriviallyCommutesDualBasis reports whether [a, b] is provably the zero
// operator from shape and index-overlap information alone.
//
// The rule table, in order:
//  1. disjoint mode sets → true (operators on disjoint modes commute)
//  2. both NumberDiagonal → true, regardless of overlap
//  3. one Hopping, the other a single diagonal term on exactly the hop's
//     two modes → true
//  4. both Hopping, sharing exactly one mode in the same role (both
//     create it, or both annihilate it) → true
//  5. anything else → false
func TriviallyCommutesDualBasis(a, b *fermion.Operator) bool {
	setA, shapeA := Classify(a)
	setB, shapeB := Classify(b)

	return pairwiseTrivial(setA, shapeA, setB, shapeB)
}

// pairwiseTrivial is the shared shape-based rule table over classified
// operands.
func pairwiseTrivial(setA ModeSet, shapeA Shape, setB ModeSet, shapeB Shape) bool {
	if !setA.Intersects(setB) {
		return true
	}

	if shapeA.Tag == ShapeNumberDiagonal && shapeB.Tag == ShapeNumberDiagonal {
		return true
	}

	// Hopping against a diagonal operator commutes only when the diagonal
	// side is one density product over exactly the hop's two modes: the
	// hop then conserves the product n_i·n_j it is tested against.
	// Multi-term diagonal sums (e.g. n_i + n_i·n_j) share the index set
	// but not the property, so they stay on the exact path.
	if shapeA.Tag == ShapeHopping && shapeB.Tag == ShapeNumberDiagonal {
		return shapeB.Terms == 1 && setB.Equal(setA)
	}
	if shapeB.Tag == ShapeHopping && shapeA.Tag == ShapeNumberDiagonal {
		return shapeA.Terms == 1 && setA.Equal(setB)
	}

	if shapeA.Tag == ShapeHopping && shapeB.Tag == ShapeHopping {
		shared := setA.Intersection(setB)
		if shared.Len() != 1 {
			return false
		}
		m := shared.Modes()[0]
		// Same role on the shared mode: every term of the commutator
		// expansion carries a†a† (or aa) on it and vanishes. Opposite
		// roles chain the two excitations into a new hopping term.
		sameCreate := shapeA.Create == m && shapeB.Create == m
		sameAnnihilate := shapeA.Annihilate == m && shapeB.Annihilate == m

		return sameCreate || sameAnnihilate
	}

	return false
}

// TriviallyDoubleCommutesDualBasis reports whether [a, [b, c]] is provably
// the zero operator from shape and index-overlap information alone.
//
// True when the inner commutator [b, c] is itself trivially zero, when a
// touches no mode of b or c, or when [b, c] collapses to a hopping-shaped
// residual that the pairwise rules prove commutes with a.
func TriviallyDoubleCommutesDualBasis(a, b, c *fermion.Operator) bool {
	setB, shapeB := Classify(b)
	setC, shapeC := Classify(c)
	if pairwiseTrivial(setB, shapeB, setC, shapeC) {
		return true
	}

	setA, shapeA := Classify(a)
	if !setA.Intersects(setB.Union(setC)) {
		return true
	}

	if resSet, resShape, ok := innerHopResidual(setB, shapeB, setC, shapeC); ok {
		return pairwiseTrivial(setA, shapeA, resSet, resShape)
	}

	return false
}

// innerHopResidual recognizes the one non-vanishing inner-commutator form
// the rules can still reason about: a single diagonal term whose support
// sits strictly inside a hopping operator's mode pair. The commutator of
// the two is then a scalar multiple of the hopping term itself, so the
// residual keeps the hop's index set and roles.
func innerHopResidual(setB ModeSet, shapeB Shape, setC ModeSet, shapeC Shape) (ModeSet, Shape, bool) {
	var hopSet, numSet ModeSet
	var hop, num Shape

	switch {
	case shapeB.Tag == ShapeHopping && shapeC.Tag == ShapeNumberDiagonal:
		hopSet, hop, numSet, num = setB, shapeB, setC, shapeC
	case shapeC.Tag == ShapeHopping && shapeB.Tag == ShapeNumberDiagonal:
		hopSet, hop, numSet, num = setC, shapeC, setB, shapeB
	default:
		return nil, Shape{}, false
	}

	if num.Terms != 1 || !hopSet.ContainsAll(numSet) {
		return nil, Shape{}, false
	}

	return hopSet, hop, true
}

// TriviallyDoubleCommutesDualBasisUsingTermInfo is the metadata-driven
// fast path: the same one-sided decision as
// TriviallyDoubleCommutesDualBasis, taken on caller-supplied TermInfo so
// that triple-nested term enumerations never re-derive index sets or
// shape flags. alpha plays the outer role A in [A, [B, C]], beta the role
// B, and alphaPrime the role C (an alternate member of the outer
// operator's term family, in enumeration loops over related terms).
//
// jelliumOnly asserts the uniform-electron-gas Hamiltonian: every
// diagonal term is a two-mode density–density product with no single-mode
// pieces. That assumption unlocks one extra shortcut — a hopping operator
// whose mode pair is exactly a diagonal operand's support commutes with
// it.
func TriviallyDoubleCommutesDualBasisUsingTermInfo(alpha, beta, alphaPrime TermInfo, jelliumOnly bool) bool {
	// Inner commutator [B, C] vanishes: disjoint support, or two diagonal
	// operators.
	if !beta.Indices.Intersects(alphaPrime.Indices) {
		return true
	}
	if !beta.IsHopping && !alphaPrime.IsHopping {
		return true
	}

	// Outer operator disjoint from everything [B, C] can touch.
	if !alpha.Indices.Intersects(beta.Indices.Union(alphaPrime.Indices)) {
		return true
	}

	if jelliumOnly && beta.IsHopping != alphaPrime.IsHopping {
		hop, diag := beta, alphaPrime
		if alphaPrime.IsHopping {
			hop, diag = alphaPrime, beta
		}
		if hop.Indices.Equal(diag.Indices) {
			return true
		}
	}

	return false
}
