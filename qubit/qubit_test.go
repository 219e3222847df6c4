package qubit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantatlas/manybody/qubit"
)

// TestNew_BadPauliStrings ensures malformed tokens surface ErrBadPauli.
func TestNew_BadPauliStrings(t *testing.T) {
	for _, paulis := range []string{"W1", "X", "Xq", "X1 Y1"} {
		_, err := qubit.New(paulis, 1)
		assert.ErrorIs(t, err, qubit.ErrBadPauli, "paulis %q must be rejected", paulis)
	}
}

// TestNew_CanonicalizesFactorOrder sorts factors by qubit index so equal
// strings written in different orders land on the same term.
func TestNew_CanonicalizesFactorOrder(t *testing.T) {
	a := qubit.MustNew("Y2 X1", 1)
	b := qubit.MustNew("X1 Y2", 1)
	assert.True(t, a.IsClose(b), "factor order within a term must not matter")
}

// TestMul_PauliProducts checks the single-qubit product table with phases.
func TestMul_PauliProducts(t *testing.T) {
	x := qubit.MustNew("X0", 1)
	y := qubit.MustNew("Y0", 1)
	z := qubit.MustNew("Z0", 1)

	assert.True(t, x.Mul(y).IsClose(z.Scale(1i)), "X·Y = iZ")
	assert.True(t, y.Mul(x).IsClose(z.Scale(-1i)), "Y·X = -iZ")
	assert.True(t, y.Mul(z).IsClose(x.Scale(1i)), "Y·Z = iX")
	assert.True(t, z.Mul(x).IsClose(y.Scale(1i)), "Z·X = iY")
	assert.True(t, x.Mul(x).IsClose(qubit.Identity()), "X² = I")
}

// TestMul_DisjointQubitsTensor multiplies factors on disjoint qubits into
// one longer Pauli string.
func TestMul_DisjointQubitsTensor(t *testing.T) {
	prod := qubit.MustNew("X1", 2).Mul(qubit.MustNew("Y2", 3))
	assert.True(t, prod.IsClose(qubit.MustNew("X1 Y2", 6)), "disjoint factors tensor together")
}

// TestAddSub_PrunesCancelledTerms verifies exact cancellation empties the
// term map.
func TestAddSub_PrunesCancelledTerms(t *testing.T) {
	op := qubit.MustNew("X1 Y2", 0.5)
	assert.True(t, op.Sub(op).IsZero(), "op - op must prune to the zero operator")
}

// TestPauliCommutator spot-checks [X0, Y0] = 2iZ0 symbolically.
func TestPauliCommutator(t *testing.T) {
	x := qubit.MustNew("X0", 1)
	y := qubit.MustNew("Y0", 1)

	com := x.Mul(y).Sub(y.Mul(x))
	assert.True(t, com.IsClose(qubit.MustNew("Z0", 2i)), "[X, Y] = 2iZ")
}

// TestSameQubitSquareToIdentity verifies phase bookkeeping across a
// multi-factor product collapse.
func TestSameQubitSquareToIdentity(t *testing.T) {
	op := qubit.MustNew("X1 Y2", 1)
	sq := op.Mul(op)
	assert.True(t, sq.IsClose(qubit.Identity()), "(X1 Y2)² = I")
}
