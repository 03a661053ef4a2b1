package streamerdb

import "errors"

var (
	// ErrNotFound indicates no streamer registration matched.
	ErrNotFound = errors.New("streamer registration not found")
	// ErrSideTaken indicates the side already has a streamer.
	ErrSideTaken = errors.New("side already has a streamer")
)
