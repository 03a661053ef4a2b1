package uicontroldb

import "errors"

var (
	// ErrNotFound indicates no control record exists for the message.
	ErrNotFound = errors.New("control not found")
)
