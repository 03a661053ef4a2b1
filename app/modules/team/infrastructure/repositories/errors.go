package teamdb

import "errors"

var (
	// ErrNotFound is returned when no team matches the lookup.
	ErrNotFound = errors.New("team not found")
)
