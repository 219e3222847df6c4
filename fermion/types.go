// Package fermion: term representation and the action-string codec.
package fermion

import (
	"fmt"
	"strconv"
	"strings"
)

// CoeffTolerance is the magnitude below which coefficients are treated as
// zero, both when pruning accumulated terms and when comparing operators
// with IsClose.
const CoeffTolerance = 1e-12

// Ladder is a single creation or annihilation operator acting on one mode.
type Ladder struct {
	// Mode is the non-negative index of the fermionic mode acted on.
	Mode int

	// Raised reports whether this is a creation operator (a†).
	// False means annihilation (a).
	Raised bool
}

// String renders the ladder operator in action-string notation,
// e.g. "3^" for a†₃ and "3" for a₃.
func (l Ladder) String() string {
	if l.Raised {
		return strconv.Itoa(l.Mode) + "^"
	}

	return strconv.Itoa(l.Mode)
}

// ParseTerm parses an action string like "1^ 2^ 3 4" into its ladder
// sequence. The empty string denotes the identity term. Returns
// ErrBadAction for any token that is not a non-negative integer optionally
// suffixed with '^'.
func ParseTerm(actions string) ([]Ladder, error) {
	fields := strings.Fields(actions)
	if len(fields) == 0 {
		return nil, nil
	}

	term := make([]Ladder, 0, len(fields))
	for _, tok := range fields {
		raised := strings.HasSuffix(tok, "^")
		num := strings.TrimSuffix(tok, "^")
		mode, err := strconv.Atoi(num)
		if err != nil || mode < 0 {
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadAction)
		}
		term = append(term, Ladder{Mode: mode, Raised: raised})
	}

	return term, nil
}

// encodeTerm renders a ladder sequence as its canonical action string.
// The identity term encodes as "".
func encodeTerm(term []Ladder) string {
	if len(term) == 0 {
		return ""
	}

	parts := make([]string, len(term))
	for i, l := range term {
		parts[i] = l.String()
	}

	return strings.Join(parts, " ")
}
