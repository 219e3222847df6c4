package qubit

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// CoeffTolerance is the magnitude below which coefficients are treated as
// zero, for both term pruning and IsClose comparison.
const CoeffTolerance = 1e-12

// Factor is one single-qubit Pauli acting on an indexed qubit.
type Factor struct {
	// Qubit is the non-negative index of the qubit acted on.
	Qubit int

	// Pauli is one of 'X', 'Y', 'Z'.
	Pauli byte
}

// String renders the factor in Pauli-string notation, e.g. "X1".
func (f Factor) String() string {
	return string(f.Pauli) + strconv.Itoa(f.Qubit)
}

// Operator is an immutable complex linear combination of Pauli strings.
// Term keys are canonical: factors sorted by ascending qubit index.
type Operator struct {
	terms map[string]complex128
}

// Zero returns the additive identity: the operator with no terms.
func Zero() *Operator {
	return &Operator{terms: map[string]complex128{}}
}

// Identity returns the multiplicative identity: the empty Pauli string
// with coefficient one.
func Identity() *Operator {
	return &Operator{terms: map[string]complex128{"": 1}}
}

// New builds a single-term operator from a Pauli string and coefficient.
// Returns ErrBadPauli when the string does not parse.
//
// Example: New("X1 Y2", 0.5) is 0.5 · X₁Y₂.
func New(paulis string, coeff complex128) (*Operator, error) {
	factors, err := ParseString(paulis)
	if err != nil {
		return nil, err
	}

	op := Zero()
	op.accumulate(encodeFactors(factors), coeff)

	return op, nil
}

// MustNew is New for literal Pauli strings; it panics on a malformed
// string, in the manner of regexp.MustCompile.
func MustNew(paulis string, coeff complex128) *Operator {
	op, err := New(paulis, coeff)
	if err != nil {
		panic(err)
	}

	return op
}

// ParseString parses a Pauli string like "Z0 X1 Y2" into factors sorted by
// qubit index. The empty string denotes the identity term.
func ParseString(paulis string) ([]Factor, error) {
	fields := strings.Fields(paulis)
	if len(fields) == 0 {
		return nil, nil
	}

	seen := map[int]struct{}{}
	factors := make([]Factor, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < 2 || (tok[0] != 'X' && tok[0] != 'Y' && tok[0] != 'Z') {
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadPauli)
		}
		qubit, err := strconv.Atoi(tok[1:])
		if err != nil || qubit < 0 {
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadPauli)
		}
		if _, dup := seen[qubit]; dup {
			return nil, fmt.Errorf("qubit %d repeated: %w", qubit, ErrBadPauli)
		}
		seen[qubit] = struct{}{}
		factors = append(factors, Factor{Qubit: qubit, Pauli: tok[0]})
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i].Qubit < factors[j].Qubit })

	return factors, nil
}

// encodeFactors renders sorted factors as the canonical term key.
func encodeFactors(factors []Factor) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}

	return strings.Join(parts, " ")
}

func (o *Operator) accumulate(key string, coeff complex128) {
	total := o.terms[key] + coeff
	if cmplx.Abs(total) <= CoeffTolerance {
		delete(o.terms, key)

		return
	}
	o.terms[key] = total
}

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

// Mul returns the operator product o · other, multiplying Pauli strings
// factor-by-factor with exact phase tracking.
func (o *Operator) Mul(other *Operator) *Operator {
	out := Zero()
	for k1, v1 := range o.terms {
		for k2, v2 := range other.terms {
			key, phase := mulKeys(k1, k2)
			out.accumulate(key, v1*v2*phase)
		}
	}

	return out
}

// mulKeys multiplies two canonical term keys, returning the resulting
// canonical key and the accumulated phase.
func mulKeys(k1, k2 string) (string, complex128) {
	f1, _ := ParseString(k1) // stored keys are always well formed
	f2, _ := ParseString(k2)

	paulis := make(map[int]byte, len(f1)+len(f2))
	for _, f := range f1 {
		paulis[f.Qubit] = f.Pauli
	}

	phase := complex128(1)
	for _, f := range f2 {
		left, ok := paulis[f.Qubit]
		if !ok {
			paulis[f.Qubit] = f.Pauli

			continue
		}
		res, ph := mulPaulis(left, f.Pauli)
		phase *= ph
		if res == 0 {
			delete(paulis, f.Qubit) // equal Paulis square to identity
		} else {
			paulis[f.Qubit] = res
		}
	}

	factors := make([]Factor, 0, len(paulis))
	for q, p := range paulis {
		factors = append(factors, Factor{Qubit: q, Pauli: p})
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i].Qubit < factors[j].Qubit })

	return encodeFactors(factors), phase
}

// mulPaulis multiplies two single-qubit Paulis. A zero result byte means
// the identity.
func mulPaulis(a, b byte) (byte, complex128) {
	if a == b {
		return 0, 1
	}

	// Cyclic order X→Y→Z picks up +i, the reverse −i.
	switch {
	case a == 'X' && b == 'Y':
		return 'Z', 1i
	case a == 'Y' && b == 'Z':
		return 'X', 1i
	case a == 'Z' && b == 'X':
		return 'Y', 1i
	case a == 'Y' && b == 'X':
		return 'Z', -1i
	case a == 'Z' && b == 'Y':
		return 'X', -1i
	default: // a == 'X' && b == 'Z'
		return 'Y', -1i
	}
}

// IsClose reports whether o and other agree term-wise within
// CoeffTolerance.
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

// String renders the operator as a sum of coefficient-tagged Pauli strings
// in deterministic order.
func (o *Operator) String() string {
	if o.IsZero() {
		return "0"
	}

	keys := make([]string, 0, len(o.terms))
	for k := range o.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v [%s]", o.terms[k], k))
	}

	return strings.Join(parts, " + ")
}
