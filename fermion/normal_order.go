package fermion

// NormalOrdered — canonical-form reduction
//
// Description:
//
//	Rewrites every term so that all creation operators stand left of all
//	annihilation operators, with each block sorted by descending mode
//	index. Reordering uses the canonical anticommutation relation
//
//	  a_p a_q† = δ_pq − a_q† a_p
//
//	so each lowering/raising swap flips the coefficient sign and, on equal
//	modes, spawns an extra term with the pair contracted away. Two
//	creations (or two annihilations) on the same mode annihilate the term
//	outright.
//
// Complexity:
//
//	O(k²) swaps per k-ladder term, plus the recursive contraction terms;
//	exponential only in the (small, bounded) number of equal-mode crossings.

// NormalOrdered returns the canonical form of o. The result compares
// stably under IsClose: two operators equal as algebra elements have
// identical normal-ordered term maps.
func (o *Operator) NormalOrdered() *Operator {
	out := Zero()
	o.Each(func(term []Ladder, coeff complex128) {
		out = out.Add(normalOrderedTerm(term, coeff))
	})

	return out
}

// normalOrderedTerm normal-orders a single ladder product via insertion
// passes, accumulating contraction terms recursively.
func normalOrderedTerm(term []Ladder, coeff complex128) *Operator {
	out := Zero()
	ops := append([]Ladder(nil), term...)

	for i := 1; i < len(ops); i++ {
		for j := i; j > 0; j-- {
			left, right := ops[j-1], ops[j]

			switch {
			case right.Raised && !left.Raised:
				// a_p a_q† → δ_pq − a_q† a_p
				ops[j-1], ops[j] = right, left
				coeff = -coeff
				if left.Mode == right.Mode {
					contracted := make([]Ladder, 0, len(ops)-2)
					contracted = append(contracted, ops[:j-1]...)
					contracted = append(contracted, ops[j+1:]...)
					out = out.Add(normalOrderedTerm(contracted, -coeff))
				}

			case right.Raised == left.Raised:
				if right.Mode == left.Mode {
					// a† a† (or a a) on one mode: the whole term vanishes.
					return out
				}
				if right.Mode > left.Mode {
					ops[j-1], ops[j] = right, left
					coeff = -coeff
				}
			}
		}
	}

	out.accumulate(encodeTerm(ops), coeff)

	return out
}
