package teamtypes

import (
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Team mirrors a tournament team from configuration into the store.
// The Discord role is the source of truth for membership.
type Team struct {
	ID        sharedtypes.TeamID `json:"id"`
	Name      string             `json:"name"`
	RoleID    sharedtypes.RoleID `json:"role_id"`
	Active    bool               `json:"active"`
	CreatedAt time.Time          `json:"created_at"`
}

// RosterEntry is one configured team before it has a store identity.
type RosterEntry struct {
	Name   string             `json:"name"`
	RoleID sharedtypes.RoleID `json:"role_id"`
}

// Membership is the outcome of resolving a user against the two teams of a match.
type Membership struct {
	Team     *Team `json:"team"`
	Opponent *Team `json:"opponent"`
}
