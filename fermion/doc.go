// Package fermion implements a symbolic fermionic operator algebra:
// complex linear combinations of products of indexed creation (a†) and
// annihilation (a) operators.
//
// 🚀 What is a fermion.Operator?
//
//	A weighted sum of ladder products, written in the conventional
//	action-string notation:
//	  "1^ 2"        — a†₁ a₂, a hopping term moving a particle 2 → 1
//	  "3^ 3"        — a†₃ a₃, the occupation-number operator n₃
//	  "3^ 2^ 3 2"   — a two-mode density product (diagonal)
//	  ""            — the identity
//
// ✨ Key features:
//   - exact term-wise Add / Sub / Mul / Scale with complex coefficients
//   - NormalOrdered: rewrite into the canonical form (all creations left of
//     all annihilations, each block in descending mode order) using the
//     anticommutation relation a_p a_q† = δ_pq − a_q† a_p
//   - HermitianConjugate, Identity, Zero, tolerance-based IsClose
//   - deterministic term iteration for classifiers and transforms
//
// Operators are immutable: every method returns a fresh value, so sharing
// across goroutines needs no synchronization.
//
// Coefficients with magnitude at or below CoeffTolerance are pruned during
// accumulation; IsClose compares the union of both operators' terms within
// the same tolerance.
package fermion
