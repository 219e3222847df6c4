package fermion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantatlas/manybody/fermion"
)

// TestNew_ParsesActionString verifies round-tripping of a multi-ladder
// action string through construction and term iteration.
func TestNew_ParsesActionString(t *testing.T) {
	op, err := fermion.New("1^ 2^ 3 4", -3.17)
	require.NoError(t, err, "well-formed action string must parse")
	assert.Equal(t, 1, op.TermCount(), "single-term operator expected")

	op.Each(func(term []fermion.Ladder, coeff complex128) {
		require.Len(t, term, 4, "four ladder operators expected")
		assert.Equal(t, fermion.Ladder{Mode: 1, Raised: true}, term[0], "first ladder")
		assert.Equal(t, fermion.Ladder{Mode: 4, Raised: false}, term[3], "last ladder")
		assert.Equal(t, complex128(-3.17), coeff, "coefficient preserved")
	})
}

// TestNew_BadActionStrings ensures malformed tokens surface ErrBadAction.
func TestNew_BadActionStrings(t *testing.T) {
	for _, actions := range []string{"x^", "1^^", "-1", "2^ q"} {
		_, err := fermion.New(actions, 1)
		assert.ErrorIs(t, err, fermion.ErrBadAction, "actions %q must be rejected", actions)
	}
}

// TestIdentityAndZero checks the additive and multiplicative identities.
func TestIdentityAndZero(t *testing.T) {
	id := fermion.Identity()
	zero := fermion.Zero()
	op := fermion.MustNew("2^ 3", 2.3)

	assert.True(t, zero.IsZero(), "Zero must have no terms")
	assert.True(t, id.Mul(op).IsClose(op), "identity must be neutral on the left")
	assert.True(t, op.Mul(id).IsClose(op), "identity must be neutral on the right")
	assert.True(t, op.Add(zero).IsClose(op), "zero must be neutral under addition")
}

// TestAddSub_PrunesCancelledTerms verifies that exact cancellation empties
// the term map.
func TestAddSub_PrunesCancelledTerms(t *testing.T) {
	op := fermion.MustNew("1^ 2", 3)

	diff := op.Sub(op)
	assert.True(t, diff.IsZero(), "op - op must prune to the zero operator")
	assert.Equal(t, 0, diff.TermCount(), "no residual terms expected")
}

// TestMul_ConcatenatesLadders verifies term-wise multiplication without
// reordering.
func TestMul_ConcatenatesLadders(t *testing.T) {
	prod := fermion.MustNew("1^", 2).Mul(fermion.MustNew("2", 3))
	assert.True(t, prod.IsClose(fermion.MustNew("1^ 2", 6)), "coefficients multiply, ladders concatenate")
}

// TestScale_MultipliesCoefficients verifies scalar multiplication,
// including annihilation by zero.
func TestScale_MultipliesCoefficients(t *testing.T) {
	op := fermion.MustNew("1^ 2", 1).Add(fermion.MustNew("2^ 1", 1))

	scaled := op.Scale(2.5)
	want := fermion.MustNew("1^ 2", 2.5).Add(fermion.MustNew("2^ 1", 2.5))
	assert.True(t, scaled.IsClose(want), "every coefficient must scale")
	assert.True(t, op.Scale(0).IsZero(), "scaling by zero yields the zero operator")
}

// TestHermitianConjugate reverses ladder order, swaps roles, and
// conjugates coefficients.
func TestHermitianConjugate(t *testing.T) {
	op := fermion.MustNew("1^ 2", 1i)

	conj := op.HermitianConjugate()
	assert.True(t, conj.IsClose(fermion.MustNew("2^ 1", -1i)), "(i a1† a2)† = -i a2† a1")

	double := conj.HermitianConjugate()
	assert.True(t, double.IsClose(op), "conjugation must be an involution")
}

// TestModes collects the sorted union of touched mode indices.
func TestModes(t *testing.T) {
	op := fermion.MustNew("4^ 1", 1).Add(fermion.MustNew("3^ 3", 2))
	assert.Equal(t, []int{1, 3, 4}, op.Modes(), "modes from every term, deduplicated and sorted")
}

// TestIsClose_Tolerance accepts sub-tolerance deviations and rejects
// anything larger.
func TestIsClose_Tolerance(t *testing.T) {
	a := fermion.MustNew("1^ 2", 1)

	within := fermion.MustNew("1^ 2", 1+1e-13)
	assert.True(t, a.IsClose(within), "deviation below CoeffTolerance must pass")

	beyond := fermion.MustNew("1^ 2", 1+1e-6)
	assert.False(t, a.IsClose(beyond), "deviation above CoeffTolerance must fail")

	extra := a.Add(fermion.MustNew("3^ 4", 1e-6))
	assert.False(t, a.IsClose(extra), "an extra non-negligible term must fail")
}
