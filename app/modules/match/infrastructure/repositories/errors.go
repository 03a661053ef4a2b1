package matchdb

import "errors"

var (
	// ErrNotFound is returned when no match or setting matches the lookup.
	ErrNotFound = errors.New("match not found")
	// ErrNoRowsAffected is returned by conditional writes whose guard did not
	// hold, e.g. setting a time that is already set.
	ErrNoRowsAffected = errors.New("no rows affected")
)
