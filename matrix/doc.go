// Package matrix provides a dense complex matrix primitive used as the
// numeric operand variant of the commutator API.
//
// Dense is a row-major matrix of complex128 values backed by a flat slice
// for cache friendliness. The surface is deliberately small: construction,
// element access, Add/Sub/Mul/Scale, and tolerance comparison — exactly
// what a plain numeric commutator A·B − B·A needs.
//
// The canonical 2×2 Pauli matrices are exported as fixtures
// (PauliX, PauliY, PauliZ) for spot-checking operator identities such as
// [X, Y] = 2i·Z.
package matrix
