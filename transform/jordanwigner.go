package transform

import (
	"strconv"
	"strings"

	"github.com/quantatlas/manybody/fermion"
	"github.com/quantatlas/manybody/qubit"
)

// JordanWigner returns the qubit-operator image of op under the
// Jordan–Wigner encoding. The zero operator maps to the zero operator and
// the identity to the identity.
func JordanWigner(op *fermion.Operator) *qubit.Operator {
	out := qubit.Zero()
	op.Each(func(term []fermion.Ladder, coeff complex128) {
		acc := qubit.Identity().Scale(coeff)
		for _, l := range term {
			acc = acc.Mul(ladderImage(l))
		}
		out = out.Add(acc)
	})

	return out
}

// ladderImage maps a single ladder operator to its Pauli-string pair.
func ladderImage(l fermion.Ladder) *qubit.Operator {
	var chain strings.Builder
	for q := 0; q < l.Mode; q++ {
		chain.WriteString("Z" + strconv.Itoa(q) + " ")
	}
	xKey := chain.String() + "X" + strconv.Itoa(l.Mode)
	yKey := chain.String() + "Y" + strconv.Itoa(l.Mode)

	// a† carries −i/2 on the Y part, a carries +i/2.
	yCoeff := complex(0, 0.5)
	if l.Raised {
		yCoeff = complex(0, -0.5)
	}

	return qubit.MustNew(xKey, 0.5).Add(qubit.MustNew(yKey, yCoeff))
}
