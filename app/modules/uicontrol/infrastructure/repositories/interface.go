package uicontroldb

import (
	"context"
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
)

// Repository is the persistence boundary of the uicontrol module.
type Repository interface {
	// Upsert writes the control row and replaces its button rows atomically.
	Upsert(ctx context.Context, control *uicontroltypes.Control) error
	GetByMessageID(ctx context.Context, messageID sharedtypes.MessageID) (*uicontroltypes.Control, error)
	// Deactivate marks the control dead. Returns ErrNotFound when no record
	// exists for the message.
	Deactivate(ctx context.Context, messageID sharedtypes.MessageID) error
	ListActive(ctx context.Context, guildID sharedtypes.GuildID) ([]uicontroltypes.Control, error)
	Delete(ctx context.Context, messageID sharedtypes.MessageID) error
	// DeleteOlderThan removes controls last touched before the cutoff,
	// buttons included, and reports how many went away.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error)
}
