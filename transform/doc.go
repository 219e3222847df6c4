// Package transform maps fermionic operators onto qubit operators.
//
// JordanWigner implements the Jordan–Wigner encoding: mode j's ladder
// operators become Pauli strings with a Z-parity chain on qubits 0..j−1,
//
//	a†_j → ½ · Z₀…Z_{j−1} (X_j − iY_j)
//	a_j  → ½ · Z₀…Z_{j−1} (X_j + iY_j)
//
// extended linearly over terms and multiplicatively over ladder products.
// The transform preserves the algebra, so commutators computed before and
// after the mapping agree.
package transform
