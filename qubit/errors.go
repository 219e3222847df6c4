package qubit

import "errors"

// Sentinel errors for operator construction.
// Messages are prefixed with "qubit: ..."; match with errors.Is.
var (
	// ErrBadPauli is returned when a Pauli string cannot be parsed: a
	// token whose letter is not X, Y, or Z, whose qubit index is not a
	// non-negative integer, or a qubit appearing twice in one term.
	ErrBadPauli = errors.New("qubit: malformed Pauli string")
)
