package commutator

import (
	"fmt"

	"github.com/quantatlas/manybody/fermion"
	"github.com/quantatlas/manybody/matrix"
	"github.com/quantatlas/manybody/qubit"
)

// variant identifies the concrete operand kind accepted by Commutator.
type variant int

const (
	variantUnknown variant = iota
	variantFermion
	variantQubit
	variantMatrix
)

// variantOf maps an operand to its variant tag.
func variantOf(v any) variant {
	switch v.(type) {
	case *fermion.Operator:
		return variantFermion
	case *qubit.Operator:
		return variantQubit
	case *matrix.Dense:
		return variantMatrix
	default:
		return variantUnknown
	}
}

// Commutator returns a·b − b·a.
//
// Both operands must be the same recognized variant: *fermion.Operator,
// *qubit.Operator, or *matrix.Dense. Violations return ErrUnknownOperand
// or ErrMixedOperands before any arithmetic. The fermionic result is NOT
// normal-ordered; apply NormalOrdered when a canonical form is needed.
func Commutator(a, b any) (any, error) {
	va := variantOf(a)
	if va == variantUnknown {
		return nil, fmt.Errorf("operand a (%T): %w", a, ErrUnknownOperand)
	}
	vb := variantOf(b)
	if vb == variantUnknown {
		return nil, fmt.Errorf("operand b (%T): %w", b, ErrUnknownOperand)
	}
	if va != vb {
		return nil, fmt.Errorf("%T vs %T: %w", a, b, ErrMixedOperands)
	}

	switch x := a.(type) {
	case *fermion.Operator:
		y := b.(*fermion.Operator)

		return x.Mul(y).Sub(y.Mul(x)), nil

	case *qubit.Operator:
		y := b.(*qubit.Operator)

		return x.Mul(y).Sub(y.Mul(x)), nil

	default:
		x2 := a.(*matrix.Dense)
		y := b.(*matrix.Dense)

		return matrixCommutator(x2, y)
	}
}

// matrixCommutator evaluates x·y − y·x, propagating dimension errors.
func matrixCommutator(x, y *matrix.Dense) (*matrix.Dense, error) {
	xy, err := x.Mul(y)
	if err != nil {
		return nil, err
	}
	yx, err := y.Mul(x)
	if err != nil {
		return nil, err
	}

	return xy.Sub(yx)
}

// DoubleCommutator returns [a, [b, c]].
//
// infoB and infoC optionally carry pre-computed TermInfo for b and c (both
// nil-able; supply both or neither). When both are present and a is
// fermionic, the metadata predicate is consulted first and a provably
// vanishing double commutator short-circuits to the fermionic zero
// operator without any multiplication. Two Hermitian hopping operators
// sharing exactly one mode additionally take a closed form for the inner
// commutator. Everything else evaluates exactly via two nested
// Commutator calls; fermionic results are returned normal-ordered.
//
// Type errors propagate from Commutator.
func DoubleCommutator(a, b, c any, infoB, infoC *TermInfo) (any, error) {
	fa, fermionic := a.(*fermion.Operator)
	haveInfo := infoB != nil && infoC != nil

	if fermionic && haveInfo {
		setA, shapeA := Classify(fa)
		alpha := TermInfo{Indices: setA, IsHopping: shapeA.Tag == ShapeHopping}
		if TriviallyDoubleCommutesDualBasisUsingTermInfo(alpha, *infoB, *infoC, false) {
			return fermion.Zero(), nil
		}
	}

	inner, ok := hoppingPairCommutator(b, c, infoB, infoC, haveInfo)
	if !ok {
		raw, err := Commutator(b, c)
		if err != nil {
			return nil, err
		}
		inner = raw
		if f, isFermion := inner.(*fermion.Operator); isFermion {
			inner = f.NormalOrdered()
		}
	}

	out, err := Commutator(a, inner)
	if err != nil {
		return nil, err
	}
	if f, isFermion := out.(*fermion.Operator); isFermion {
		return f.NormalOrdered(), nil
	}

	return out, nil
}

// hoppingPairCommutator computes [b, c] in closed form for two Hermitian
// hopping operators β·(a†_i a_k + a†_k a_i) and γ·(a†_j a_k + a†_k a_j):
//
//   - disjoint mode pairs, or the same pair, commute → zero
//   - exactly one shared mode k → β·γ·(a†_i a_j − a†_j a_i); the shared
//     mode is excited and de-excited, dropping out of the result
//
// Requires the TermInfo metadata for both operands; reports ok=false
// whenever the shortcut does not apply and exact computation must run.
func hoppingPairCommutator(b, c any, infoB, infoC *TermInfo, haveInfo bool) (any, bool) {
	if !haveInfo || !infoB.IsHopping || !infoC.IsHopping {
		return nil, false
	}
	fb, okB := b.(*fermion.Operator)
	fc, okC := c.(*fermion.Operator)
	if !okB || !okC {
		return nil, false
	}

	shared := infoB.Indices.Intersection(infoC.Indices)
	if shared.Len() != 1 {
		return fermion.Zero(), true
	}

	remainB := remainder(infoB.Indices, shared)
	remainC := remainder(infoC.Indices, shared)
	if len(remainB) != 1 || len(remainC) != 1 {
		return nil, false // malformed metadata: defer to exact computation
	}

	coeff := anyCoefficient(fb) * anyCoefficient(fc)
	i, j := remainB[0], remainC[0]
	up := fermion.MustNew(fmt.Sprintf("%d^ %d", i, j), coeff)
	down := fermion.MustNew(fmt.Sprintf("%d^ %d", j, i), -coeff)

	return up.Add(down), true
}

// remainder returns the modes of s not in drop, ascending.
func remainder(s, drop ModeSet) []int {
	out := make([]int, 0, s.Len())
	for _, m := range s.Modes() {
		if !drop.Has(m) {
			out = append(out, m)
		}
	}

	return out
}

// anyCoefficient returns one term coefficient of op. For the Hermitian
// hopping operators this shortcut serves, both terms carry the same
// coefficient.
func anyCoefficient(op *fermion.Operator) complex128 {
	var coeff complex128
	op.Each(func(_ []fermion.Ladder, c complex128) {
		coeff = c
	})

	return coeff
}
