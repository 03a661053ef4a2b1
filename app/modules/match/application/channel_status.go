package matchservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Status icons projected onto the private channel name.
const (
	IconCreated   = "📝"
	IconScheduled = "⏳"
	IconCompleted = "✅"
)

var statusIcons = []string{IconCreated, IconScheduled, IconCompleted}

// ChannelRename is a pending rename of a match channel.
type ChannelRename struct {
	ChannelID sharedtypes.ChannelID
	Name      string
}

// StatusIcon computes the icon for a match: completed or confirmed wins,
// then an agreed time, then freshly created.
func StatusIcon(m *matchtypes.Match) string {
	switch {
	case m.Status == matchtypes.StatusCompleted || m.Status == matchtypes.StatusConfirmed:
		return IconCompleted
	case m.HasTime():
		return IconScheduled
	}
	return IconCreated
}

// stripStatusIcon removes a single leading status icon. Custom prefixes and
// emoji embedded elsewhere in the name are left alone.
func stripStatusIcon(name string) string {
	for _, icon := range statusIcons {
		if strings.HasPrefix(name, icon) {
			return strings.TrimPrefix(name, icon)
		}
	}
	return name
}

// ProjectChannelName prepends the icon to the name with any previous status
// icon removed. Projecting twice with the same state is a no-op.
func ProjectChannelName(current, icon string) string {
	return icon + stripStatusIcon(current)
}

func channelNameKey(id sharedtypes.MatchID) string {
	return fmt.Sprintf("match_%d_channel_name", id)
}

// ChannelRenameCommand projects the match state onto the private channel name
// and returns the rename to issue, or nil when the name is already correct.
// The last projected name is tracked in settings so no Discord fetch is
// needed to decide.
func (s *MatchService) ChannelRenameCommand(ctx context.Context, match *matchtypes.Match) (*ChannelRename, error) {
	if match == nil || match.PrivateChannelID == "" {
		return nil, nil
	}

	current, err := s.settings.Get(ctx, channelNameKey(match.ID))
	if err != nil {
		if !errors.Is(err, matchdb.ErrNotFound) {
			return nil, fmt.Errorf("failed to load channel name: %w", err)
		}
		current = fmt.Sprintf("match-%d", match.ID)
	}

	desired := ProjectChannelName(current, StatusIcon(match))
	if desired == current {
		return nil, nil
	}

	if err := s.renameLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rename rate limit wait canceled: %w", err)
	}

	if err := s.settings.Set(ctx, channelNameKey(match.ID), desired); err != nil {
		return nil, fmt.Errorf("failed to persist channel name: %w", err)
	}

	return &ChannelRename{
		ChannelID: match.PrivateChannelID,
		Name:      desired,
	}, nil
}
