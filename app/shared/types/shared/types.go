package sharedtypes

import "strconv"

// Discord snowflake identifiers. Kept as distinct string types so a channel ID
// can never be passed where a message ID is expected.
type (
	GuildID   string
	UserID    string
	ChannelID string
	MessageID string
	RoleID    string
)

// MatchID identifies a tournament match.
type MatchID int64

func (id MatchID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// TeamID identifies a registered team.
type TeamID int64

func (id TeamID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// TeamSide is the slot a team occupies in a match.
type TeamSide string

const (
	TeamSideOne TeamSide = "team1"
	TeamSideTwo TeamSide = "team2"
)

// Valid reports whether the side is one of the two known slots.
func (s TeamSide) Valid() bool {
	return s == TeamSideOne || s == TeamSideTwo
}

// Other returns the opposing side.
func (s TeamSide) Other() TeamSide {
	if s == TeamSideOne {
		return TeamSideTwo
	}
	return TeamSideOne
}
