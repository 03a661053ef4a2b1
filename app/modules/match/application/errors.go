package matchservice

import "errors"

// Business errors surfaced as failure payloads, never as handler errors.
var (
	ErrTeamsIdentical           = errors.New("a team cannot play against itself")
	ErrUnknownTeam              = errors.New("unknown team")
	ErrMatchTimeAlreadySet      = errors.New("match time is already set")
	ErrAlreadyFinalized         = errors.New("match result is already confirmed")
	ErrTimeNotSet               = errors.New("cannot record a result before a match time is agreed")
	ErrNoRecordedResult         = errors.New("no recorded result to confirm")
	ErrWinnerNotInMatch         = errors.New("winning team is not part of this match")
	ErrConfirmationCodeMismatch = errors.New("confirmation code does not match")
	ErrOrganizerOnly            = errors.New("only organizers can do this")
)
