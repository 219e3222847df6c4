// Package qubit implements a symbolic Pauli-string operator algebra:
// complex linear combinations of tensor products of single-qubit Pauli
// factors X, Y, Z.
//
// 🚀 What is a qubit.Operator?
//
//	A weighted sum of Pauli strings in conventional notation:
//	  "X1 Y2" — X on qubit 1 tensored with Y on qubit 2
//	  "Z0"    — Z on qubit 0
//	  ""      — the identity
//
// Products multiply factor-by-factor with exact phase tracking
// (X·Y = iZ, Y·X = −iZ, X·X = I, ...), so the algebra closes over Pauli
// strings with complex coefficients.
//
// Operators are immutable and prune coefficients within CoeffTolerance of
// zero, matching the fermion package's equality contract.
package qubit
