// Package manybody is an in-memory toolkit for exact symbolic algebra on
// many-body quantum operators — fermionic ladder algebras, Pauli/qubit
// algebras, and their commutators.
//
// 🚀 What is manybody?
//
//	A pure, dependency-free library that brings together:
//		• Fermionic operators: indexed creation/annihilation products,
//		  normal ordering, Hermitian conjugation, tolerance equality
//		• Qubit operators: Pauli-string algebra with exact phase tracking
//		• Dense complex matrices as a third, numeric operand variant
//		• Jordan–Wigner mapping from fermionic to qubit operators
//		• Commutators & double commutators with a combinatorial fast path
//		  that proves most of them are exactly zero in O(1)
//
// ✨ Why choose manybody?
//
//   - Sound shortcuts – the triviality predicates never report a false zero;
//     anything they cannot prove falls back to exact symbolic computation
//   - Pure Go – no cgo, no hidden deps
//   - Immutable values – every operation returns a fresh operator, safe to
//     share across goroutines without synchronization
//
// Everything is organized under five subpackages:
//
//	fermion/    — fermionic operator algebra (ladder terms, normal ordering)
//	qubit/      — Pauli-string operator algebra
//	matrix/     — dense complex matrices (numeric commutator operand)
//	transform/  — Jordan–Wigner basis transform
//	commutator/ — commutators, double commutators & triviality predicates
//
// The commutator package is the heart of the library: callers summing
// thousands of (double) commutators — Trotter-error estimation for
// plane-wave electronic-structure Hamiltonians is the motivating case —
// classify each Hamiltonian term once and let the predicates discard the
// vanishing combinations without a single operator multiplication.
//
//	go get github.com/quantatlas/manybody/commutator
package manybody
