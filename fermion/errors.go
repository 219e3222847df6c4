package fermion

import "errors"

// Sentinel errors for operator construction.
// All messages are prefixed with "fermion: ..." for easy grepping; match
// with errors.Is.
var (
	// ErrBadAction is returned when an action string cannot be parsed:
	// a token that is not a non-negative mode index optionally suffixed
	// with '^'.
	ErrBadAction = errors.New("fermion: malformed action string")
)
