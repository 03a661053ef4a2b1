package matchservice

import (
	"context"
	"fmt"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
)

// GetMatch loads a single match.
func (s *MatchService) GetMatch(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error) {
	return s.repo.GetByID(ctx, id)
}

// BindPrivateChannel records the private channel the gateway created and
// seeds the tracked channel name so status projection starts from reality.
func (s *MatchService) BindPrivateChannel(ctx context.Context, id sharedtypes.MatchID, channelID sharedtypes.ChannelID, name string) error {
	if err := s.repo.SetPrivateChannel(ctx, id, channelID); err != nil {
		return fmt.Errorf("failed to bind private channel: %w", err)
	}
	if name != "" {
		if err := s.settings.Set(ctx, channelNameKey(id), name); err != nil {
			return fmt.Errorf("failed to record channel name: %w", err)
		}
	}
	return nil
}

// BindPublicMessage records the public overview message the gateway posted.
func (s *MatchService) BindPublicMessage(ctx context.Context, id sharedtypes.MatchID, messageID sharedtypes.MessageID) error {
	if err := s.repo.SetPublicMessage(ctx, id, messageID); err != nil {
		return fmt.Errorf("failed to bind public message: %w", err)
	}
	return nil
}
