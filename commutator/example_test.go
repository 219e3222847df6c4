package commutator_test

import (
	"fmt"

	"github.com/quantatlas/manybody/commutator"
	"github.com/quantatlas/manybody/fermion"
)

// ExampleCommutator chains two hopping terms: [3·a†₁a₂, a†₂a₃] moves the
// excitation straight from mode 3 to mode 1.
func ExampleCommutator() {
	a := fermion.MustNew("1^ 2", 3)
	b := fermion.MustNew("2^ 3", 1)

	out, err := commutator.Commutator(a, b)
	if err != nil {
		fmt.Println("commutator failed:", err)
		return
	}

	fmt.Println(out.(*fermion.Operator).NormalOrdered())
	// Output:
	// (3+0i) [1^ 3]
}

// ExampleCommutator_numberOperator measures a hop against the occupation
// of its annihilation mode.
func ExampleCommutator_numberOperator() {
	hop := fermion.MustNew("1^ 2", 1i)
	occ := fermion.MustNew("1^ 1", 1)

	out, err := commutator.Commutator(hop, occ)
	if err != nil {
		fmt.Println("commutator failed:", err)
		return
	}

	fmt.Println(out.(*fermion.Operator).NormalOrdered())
	// Output:
	// (0-1i) [1^ 2]
}

// ExampleClassify sorts operators into the coarse algebraic shapes the
// triviality predicates reason about.
func ExampleClassify() {
	for _, op := range []*fermion.Operator{
		fermion.Identity(),
		fermion.MustNew("3^ 2", 1),
		fermion.MustNew("3^ 2^ 3 2", 1),
		fermion.MustNew("1^ 2^ 3 4", 1),
	} {
		set, shape := commutator.Classify(op)
		fmt.Printf("%-14s modes=%v\n", shape.Tag, set.Modes())
	}
	// Output:
	// Identity       modes=[]
	// Hopping        modes=[2 3]
	// NumberDiagonal modes=[2 3]
	// Other          modes=[1 2 3 4]
}

// ExampleTriviallyCommutesDualBasis screens operator pairs before paying
// for an exact commutator.
func ExampleTriviallyCommutesDualBasis() {
	density := fermion.MustNew("3^ 2^ 3 2", 1)
	farHop := fermion.MustNew("4^ 1", 1)
	nearHop := fermion.MustNew("3^ 1", 1)

	fmt.Println(commutator.TriviallyCommutesDualBasis(density, farHop))
	fmt.Println(commutator.TriviallyCommutesDualBasis(density, nearHop))
	// Output:
	// true
	// false
}

// ExampleDoubleCommutator evaluates [A, [B, C]] with metadata that lets
// the predicate prove the result is zero without any algebra.
func ExampleDoubleCommutator() {
	a := fermion.MustNew("5^ 6", 1)
	b := fermion.MustNew("3^ 2^ 3 2", 1)
	c := fermion.MustNew("4^ 3^ 4 3", 1)

	infoB := &commutator.TermInfo{Indices: commutator.NewModeSet(2, 3), IsHopping: false}
	infoC := &commutator.TermInfo{Indices: commutator.NewModeSet(3, 4), IsHopping: false}

	out, err := commutator.DoubleCommutator(a, b, c, infoB, infoC)
	if err != nil {
		fmt.Println("double commutator failed:", err)
		return
	}

	fmt.Println(out.(*fermion.Operator).IsZero())
	// Output:
	// true
}
