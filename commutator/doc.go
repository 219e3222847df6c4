// Package commutator computes commutators and double commutators of
// many-body operators, with a combinatorial fast path that proves most of
// them are exactly zero without performing any operator multiplication.
//
// 🚀 Why a fast path?
//
//	Trotter-error estimation for plane-wave electronic-structure
//	Hamiltonians sums over thousands of (double) commutators, and almost
//	all of them vanish identically. In that dual basis every Hamiltonian
//	term is one of two shapes — a hopping operator a†_i a_j or a diagonal
//	product of occupation-number factors — so whether [A,B] or [A,[B,C]]
//	is zero can usually be read off from mode-index overlap and shape tags
//	alone, replacing O(terms²) symbolic multiplication with O(1) set tests.
//
// ✨ The pieces:
//
//   - Commutator(a, b): shape-agnostic A·B − B·A over fermionic, qubit, or
//     dense-matrix operands (same variant on both sides, checked up front)
//   - Classify: derives an operator's mode-index set and ShapeTag
//     (Identity | Hopping | NumberDiagonal | Other)
//   - TriviallyCommutesDualBasis / TriviallyDoubleCommutesDualBasis:
//     sound one-sided zero tests — a true answer is a proof of zero, a
//     false answer merely defers to exact computation
//   - TriviallyDoubleCommutesDualBasisUsingTermInfo: the same decision on
//     caller-supplied TermInfo metadata, so triple-nested enumeration
//     loops classify each Hamiltonian term once instead of per call
//   - DoubleCommutator(a, b, c, infoB, infoC): consults the predicate,
//     short-circuits to the zero operator, and otherwise evaluates
//     [A,[B,C]] exactly
//
// All functions are pure and all inputs immutable; concurrent use needs no
// synchronization.
package commutator
