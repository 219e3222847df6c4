package fermion

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"
)

// Operator is an immutable complex linear combination of ladder products.
// The zero operator holds no terms; the identity is the empty term with
// coefficient one.
type Operator struct {
	// terms maps the canonical action string of a ladder product to its
	// complex coefficient. Coefficients with magnitude ≤ CoeffTolerance
	// are never stored.
	terms map[string]complex128
}

// Zero returns the additive identity: the operator with no terms.
func Zero() *Operator {
	return &Operator{terms: map[string]complex128{}}
}

// Identity returns the multiplicative identity: the empty ladder product
// with coefficient one.
func Identity() *Operator {
	return &Operator{terms: map[string]complex128{"": 1}}
}

// New builds a single-term operator from an action string and coefficient.
// Returns ErrBadAction if the action string does not parse.
//
// Example: New("1^ 2^ 3 4", -3.17) is −3.17 · a†₁ a†₂ a₃ a₄.
func New(actions string, coeff complex128) (*Operator, error) {
	term, err := ParseTerm(actions)
	if err != nil {
		return nil, err
	}

	op := Zero()
	op.accumulate(encodeTerm(term), coeff)

	return op, nil
}

// MustNew is New for literal action strings; it panics on a malformed
// string, in the manner of regexp.MustCompile.
func MustNew(actions string, coeff complex128) *Operator {
	op, err := New(actions, coeff)
	if err != nil {
		panic(err)
	}

	return op
}

// accumulate folds coeff into the term keyed by key, pruning the entry
// when the running total falls within CoeffTolerance of zero.
// The receiver must be privately owned by the caller.
func (o *Operator) accumulate(key string, coeff complex128) {
	total := o.terms[key] + coeff
	if cmplx.Abs(total) <= CoeffTolerance {
		delete(o.terms, key)

		return
	}
	o.terms[key] = total
}

// clone returns a privately owned copy of o.
func (o *Operator) clone() *Operator {
	out := &Operator{terms: make(map[string]complex128, len(o.terms))}
	for k, v := range o.terms {
		out.terms[k] = v
	}

	return out
}

// TermCount returns the number of stored terms (identity included).
func (o *Operator) TermCount() int {
	return len(o.terms)
}

// IsZero reports whether the operator has no terms.
func (o *Operator) IsZero() bool {
	return len(o.terms) == 0
}

// Each calls fn once per term, in deterministic (sorted-key) order, with
// the decoded ladder sequence and its coefficient. The identity term is
// passed as an empty ladder slice.
func (o *Operator) Each(fn func(term []Ladder, coeff complex128)) {
	for _, key := range o.sortedKeys() {
		term, _ := ParseTerm(key) // stored keys are always well formed
		fn(term, o.terms[key])
	}
}

// Modes returns the sorted set of mode indices appearing anywhere in the
// operator, in either creation or annihilation role.
func (o *Operator) Modes() []int {
	seen := map[int]struct{}{}
	o.Each(func(term []Ladder, _ complex128) {
		for _, l := range term {
			seen[l.Mode] = struct{}{}
		}
	})

	modes := make([]int, 0, len(seen))
	for m := range seen {
		modes = append(modes, m)
	}
	sort.Ints(modes)

	return modes
}

// Add returns o + other.
func (o *Operator) Add(other *Operator) *Operator {
	out := o.clone()
	for k, v := range other.terms {
		out.accumulate(k, v)
	}

	return out
}

// Sub returns o − other.
func (o *Operator) Sub(other *Operator) *Operator {
	out := o.clone()
	for k, v := range other.terms {
		out.accumulate(k, -v)
	}

	return out
}

// Scale returns c·o.
func (o *Operator) Scale(c complex128) *Operator {
	out := Zero()
	for k, v := range o.terms {
		out.accumulate(k, c*v)
	}

	return out
}

// Mul returns the operator product o · other: every pair of terms is
// concatenated and coefficients multiply. No reordering is performed;
// apply NormalOrdered for the canonical form.
func (o *Operator) Mul(other *Operator) *Operator {
	out := Zero()
	for k1, v1 := range o.terms {
		for k2, v2 := range other.terms {
			key := k1
			if k1 == "" {
				key = k2
			} else if k2 != "" {
				key = k1 + " " + k2
			}
			out.accumulate(key, v1*v2)
		}
	}

	return out
}

// HermitianConjugate returns o†: each ladder product is reversed with
// creation and annihilation roles swapped, and coefficients conjugated.
func (o *Operator) HermitianConjugate() *Operator {
	out := Zero()
	o.Each(func(term []Ladder, coeff complex128) {
		conj := make([]Ladder, len(term))
		for i, l := range term {
			conj[len(term)-1-i] = Ladder{Mode: l.Mode, Raised: !l.Raised}
		}
		out.accumulate(encodeTerm(conj), cmplx.Conj(coeff))
	})

	return out
}

// IsClose reports whether o and other agree term-wise within
// CoeffTolerance. Terms absent from one side compare against zero.
func (o *Operator) IsClose(other *Operator) bool {
	for k, v := range o.terms {
		if cmplx.Abs(v-other.terms[k]) > CoeffTolerance {
			return false
		}
	}
	for k, v := range other.terms {
		if _, ok := o.terms[k]; ok {
			continue // already compared above
		}
		if cmplx.Abs(v) > CoeffTolerance {
			return false
		}
	}

	return true
}

// String renders the operator as a sum of coefficient-tagged action
// strings in deterministic order, e.g. "(3+0i) [1^ 3]".
func (o *Operator) String() string {
	if o.IsZero() {
		return "0"
	}

	parts := make([]string, 0, len(o.terms))
	for _, key := range o.sortedKeys() {
		parts = append(parts, fmt.Sprintf("%v [%s]", o.terms[key], key))
	}

	return strings.Join(parts, " + ")
}

// sortedKeys returns the term keys in sorted order for deterministic
// iteration and rendering.
func (o *Operator) sortedKeys() []string {
	keys := make([]string, 0, len(o.terms))
	for k := range o.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
