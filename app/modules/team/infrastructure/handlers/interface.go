package teamhandlers

import (
	"context"

	teamevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// Handlers defines the event handlers of the team module.
type Handlers interface {
	HandleSyncTeams(ctx context.Context, payload *teamevents.TeamSyncRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*TeamHandlers)(nil)
