package matchservice

import (
	"context"
	"time"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Service defines the interface for match operations.
type Service interface {
	CreateMatch(ctx context.Context, payload *matchevents.MatchCreateRequestedPayloadV1) (results.OperationResult, error)
	GetMatch(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error)
	SetMatchTime(ctx context.Context, guildID sharedtypes.GuildID, id sharedtypes.MatchID, t time.Time) (results.OperationResult, error)
	SetServer(ctx context.Context, payload *matchevents.MatchServerSetRequestedPayloadV1) (results.OperationResult, error)
	RecordResult(ctx context.Context, payload *matchevents.MatchResultRecordRequestedPayloadV1) (results.OperationResult, error)
	ConfirmResult(ctx context.Context, payload *matchevents.MatchResultConfirmRequestedPayloadV1) (results.OperationResult, error)
	OverrideResult(ctx context.Context, payload *matchevents.MatchResultOverrideRequestedPayloadV1) (results.OperationResult, error)
	UpdateDetails(ctx context.Context, payload *matchevents.MatchDetailsUpdateRequestedPayloadV1) (results.OperationResult, error)
	DeleteMatch(ctx context.Context, payload *matchevents.MatchDeleteRequestedPayloadV1) (results.OperationResult, error)

	// ChannelRenameCommand projects the match state onto the private channel
	// name. Returns nil when the name is already correct.
	ChannelRenameCommand(ctx context.Context, match *matchtypes.Match) (*ChannelRename, error)

	// Surface bookkeeping written after the gateway creates resources.
	BindPrivateChannel(ctx context.Context, id sharedtypes.MatchID, channelID sharedtypes.ChannelID, name string) error
	BindPublicMessage(ctx context.Context, id sharedtypes.MatchID, messageID sharedtypes.MessageID) error
}
