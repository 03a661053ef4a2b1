package negotiationdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// NegotiationDBImpl is the bun-backed implementation of Repository.
type NegotiationDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*NegotiationDBImpl)(nil)

func (db *NegotiationDBImpl) CreateOpen(ctx context.Context, negotiation *negotiationtypes.Negotiation) error {
	model, err := toDBModel(negotiation)
	if err != nil {
		return err
	}

	res, err := db.DB.NewInsert().
		Model(model).
		On("CONFLICT (match_id, kind) WHERE state = 'open' DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert negotiation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrDuplicateOpen
	}
	return nil
}

func (db *NegotiationDBImpl) GetByID(ctx context.Context, id uuid.UUID) (*negotiationtypes.Negotiation, error) {
	model := new(Negotiation)
	err := db.DB.NewSelect().
		Model(model).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get negotiation: %w", err)
	}
	return toDomainModel(model)
}

func (db *NegotiationDBImpl) GetOpen(ctx context.Context, matchID sharedtypes.MatchID, kind negotiationtypes.Kind) (*negotiationtypes.Negotiation, error) {
	model := new(Negotiation)
	err := db.DB.NewSelect().
		Model(model).
		Where("match_id = ?", matchID).
		Where("kind = ?", kind).
		Where("state = ?", negotiationtypes.StateOpen).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get open negotiation: %w", err)
	}
	return toDomainModel(model)
}

// resolve performs a conditional open -> terminal transition.
func (db *NegotiationDBImpl) resolve(ctx context.Context, id uuid.UUID, apply func(*bun.UpdateQuery) *bun.UpdateQuery) error {
	q := db.DB.NewUpdate().
		Model((*Negotiation)(nil)).
		Where("id = ?", id).
		Where("state = ?", negotiationtypes.StateOpen)

	res, err := apply(q).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve negotiation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		exists, err := db.DB.NewSelect().
			Model((*Negotiation)(nil)).
			Where("id = ?", id).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check negotiation: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrNotOpen
	}
	return nil
}

func (db *NegotiationDBImpl) MarkAccepted(ctx context.Context, id uuid.UUID, resolvedAt time.Time) error {
	return db.resolve(ctx, id, func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.
			Set("state = ?", negotiationtypes.StateAccepted).
			Set("resolved_at = ?", resolvedAt)
	})
}

func (db *NegotiationDBImpl) MarkSuperseded(ctx context.Context, id, replacementID uuid.UUID, resolvedAt time.Time) error {
	return db.resolve(ctx, id, func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.
			Set("state = ?", negotiationtypes.StateSuperseded).
			Set("superseded_by = ?", replacementID).
			Set("resolved_at = ?", resolvedAt)
	})
}

func (db *NegotiationDBImpl) MarkExpired(ctx context.Context, id uuid.UUID, expiredAt time.Time) error {
	return db.resolve(ctx, id, func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.
			Set("state = ?", negotiationtypes.StateExpired).
			Set("resolved_at = ?", expiredAt)
	})
}

func (db *NegotiationDBImpl) SetControlMessage(ctx context.Context, id uuid.UUID, channelID sharedtypes.ChannelID, messageID sharedtypes.MessageID) error {
	res, err := db.DB.NewUpdate().
		Model((*Negotiation)(nil)).
		Set("channel_id = ?", channelID).
		Set("message_id = ?", messageID).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set control message: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *NegotiationDBImpl) DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	res, err := db.DB.NewDelete().
		Model((*Negotiation)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete negotiations: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return int(rows), nil
}

func toDBModel(n *negotiationtypes.Negotiation) (*Negotiation, error) {
	raw, err := negotiationtypes.EncodePayload(n.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode negotiation payload: %w", err)
	}
	return &Negotiation{
		ID:              n.ID,
		MatchID:         n.MatchID,
		GuildID:         n.GuildID,
		Kind:            n.Kind,
		State:           n.State,
		ProposerTeamID:  n.ProposerTeamID,
		ResponderTeamID: n.ResponderTeamID,
		Payload:         raw,
		ChannelID:       n.ChannelID,
		MessageID:       n.MessageID,
		SupersededBy:    n.SupersededBy,
		CreatedAt:       n.CreatedAt,
		ExpiresAt:       n.ExpiresAt,
		ResolvedAt:      n.ResolvedAt,
	}, nil
}

func toDomainModel(m *Negotiation) (*negotiationtypes.Negotiation, error) {
	payload, err := negotiationtypes.DecodePayload(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode negotiation payload: %w", err)
	}
	return &negotiationtypes.Negotiation{
		ID:              m.ID,
		MatchID:         m.MatchID,
		GuildID:         m.GuildID,
		Kind:            m.Kind,
		State:           m.State,
		ProposerTeamID:  m.ProposerTeamID,
		ResponderTeamID: m.ResponderTeamID,
		Payload:         payload,
		ChannelID:       m.ChannelID,
		MessageID:       m.MessageID,
		SupersededBy:    m.SupersededBy,
		CreatedAt:       m.CreatedAt,
		ExpiresAt:       m.ExpiresAt,
		ResolvedAt:      m.ResolvedAt,
	}, nil
}
