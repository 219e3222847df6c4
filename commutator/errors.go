package commutator

import "errors"

// Sentinel errors for operand validation. Both are hard precondition
// failures reported before any arithmetic; match with errors.Is.
var (
	// ErrUnknownOperand is returned when an operand is not one of the
	// recognized variants: *fermion.Operator, *qubit.Operator, or
	// *matrix.Dense.
	ErrUnknownOperand = errors.New("commutator: operand is not a fermion, qubit, or matrix operator")

	// ErrMixedOperands is returned when the operands are recognized but
	// belong to different variants (e.g. fermionic vs. qubit). Operands
	// are never coerced across variants.
	ErrMixedOperands = errors.New("commutator: operands must be the same operator variant")
)
