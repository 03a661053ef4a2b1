package negotiationdb

import "errors"

var (
	ErrNotFound = errors.New("negotiation not found")
	// ErrDuplicateOpen means an open negotiation of the same kind already
	// exists for the match.
	ErrDuplicateOpen = errors.New("an open negotiation of this kind already exists for the match")
	// ErrNotOpen means a state transition hit a row that is no longer open.
	ErrNotOpen = errors.New("negotiation is not open")
)
