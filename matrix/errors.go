// Package matrix: sentinel error set.
// All messages are prefixed with "matrix: ..." for consistency and easy
// grepping. Do not wrap these when returning directly; if context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) — callers still match
// via errors.Is.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or ragged row input).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with different shapes, or Mul with
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense receiver or argument was
	// used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
