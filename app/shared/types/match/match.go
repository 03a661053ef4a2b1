package matchtypes

import (
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Status is the lifecycle state of a match. Transitions are monotonic:
// pending -> completed -> confirmed. An organizer override may jump straight
// from pending to confirmed, never backwards.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusConfirmed Status = "confirmed"
)

func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusCompleted:
		return 1
	case StatusConfirmed:
		return 2
	}
	return -1
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s.rank() >= 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Equal states are allowed so repeated events stay idempotent.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.rank() >= s.rank()
}

// Result is the reported outcome of a match.
type Result struct {
	WinnerTeamID sharedtypes.TeamID `json:"winner_team_id"`
	Score        string             `json:"score"`
	SubmittedBy  sharedtypes.UserID `json:"submitted_by"`
	SubmittedAt  time.Time          `json:"submitted_at"`
	Override     bool               `json:"override,omitempty"`
	Note         string             `json:"note,omitempty"`
}

// Match is a scheduled fixture between two teams.
type Match struct {
	ID               sharedtypes.MatchID   `json:"id"`
	GuildID          sharedtypes.GuildID   `json:"guild_id"`
	Team1ID          sharedtypes.TeamID    `json:"team1_id"`
	Team2ID          sharedtypes.TeamID    `json:"team2_id"`
	MatchDate        time.Time             `json:"match_date"`
	MatchTime        *time.Time            `json:"match_time,omitempty"`
	MapName          string                `json:"map_name"`
	Team1Side        string                `json:"team1_side"`
	Team2Side        string                `json:"team2_side"`
	PrivateChannelID sharedtypes.ChannelID `json:"private_channel_id"`
	PublicMessageID  sharedtypes.MessageID `json:"public_message_id"`
	Status           Status                `json:"status"`
	Result           *Result               `json:"result,omitempty"`
	ReplayURL        string                `json:"replay_url,omitempty"`
	WeekNumber       int                   `json:"week_number"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// HasTime reports whether a match time has been agreed.
func (m *Match) HasTime() bool {
	return m.MatchTime != nil && !m.MatchTime.IsZero()
}

// TeamOf returns the team ID occupying the given side.
func (m *Match) TeamOf(side sharedtypes.TeamSide) sharedtypes.TeamID {
	if side == sharedtypes.TeamSideOne {
		return m.Team1ID
	}
	return m.Team2ID
}

// SideOf returns the side the given team plays on, or "" if the team is not
// part of this match.
func (m *Match) SideOf(teamID sharedtypes.TeamID) sharedtypes.TeamSide {
	switch teamID {
	case m.Team1ID:
		return sharedtypes.TeamSideOne
	case m.Team2ID:
		return sharedtypes.TeamSideTwo
	}
	return ""
}
