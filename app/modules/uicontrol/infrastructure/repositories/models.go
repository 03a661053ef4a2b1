package uicontroldb

import (
	"encoding/json"
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/uptrace/bun"
)

// Control is the durable record of one interactive message. The payload is the
// kind-specific state the restoration factories decode; buttons live in their
// own table so per-component state survives exactly as posted.
type Control struct {
	bun.BaseModel `bun:"table:ui_controls,alias:uc"`

	MessageID sharedtypes.MessageID `bun:"message_id,pk,type:varchar(20)"`
	ChannelID sharedtypes.ChannelID `bun:"channel_id,notnull,type:varchar(20)"`
	GuildID   sharedtypes.GuildID   `bun:"guild_id,notnull,type:varchar(20)"`
	Kind      string                `bun:"kind,notnull,type:varchar(20)"`
	MatchID   sharedtypes.MatchID   `bun:"match_id,nullzero"`
	Payload   json.RawMessage       `bun:"payload,type:jsonb"`
	IsActive  bool                  `bun:"is_active,notnull,default:true"`
	CreatedAt time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	Buttons []*ControlButton `bun:"rel:has-many,join:message_id=message_id"`
}

// ControlButton is one persisted component of a control message. Position
// preserves the order the buttons were posted in.
type ControlButton struct {
	bun.BaseModel `bun:"table:ui_control_buttons,alias:ucb"`

	MessageID sharedtypes.MessageID `bun:"message_id,pk,type:varchar(20)"`
	ButtonID  string                `bun:"button_id,pk,type:varchar(100)"`
	Position  int                   `bun:"position,notnull"`
	Label     string                `bun:"label,notnull"`
	Style     string                `bun:"style,notnull,type:varchar(20)"`
	Disabled  bool                  `bun:"disabled,notnull,default:false"`
	Data      map[string]string     `bun:"data,type:jsonb"`
}

func toDBModel(c *uicontroltypes.Control) (*Control, []*ControlButton) {
	if c == nil {
		return nil, nil
	}
	model := &Control{
		MessageID: c.MessageID,
		ChannelID: c.ChannelID,
		GuildID:   c.GuildID,
		Kind:      string(c.Kind),
		MatchID:   c.MatchID,
		Payload:   c.Payload,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	buttons := make([]*ControlButton, len(c.Buttons))
	for i, b := range c.Buttons {
		buttons[i] = &ControlButton{
			MessageID: c.MessageID,
			ButtonID:  b.ID,
			Position:  i,
			Label:     b.Label,
			Style:     b.Style,
			Disabled:  b.Disabled,
			Data:      b.Data,
		}
	}
	return model, buttons
}

func toDomainModel(m *Control) *uicontroltypes.Control {
	if m == nil {
		return nil
	}
	buttons := make([]uicontroltypes.Button, len(m.Buttons))
	for i, b := range m.Buttons {
		buttons[i] = uicontroltypes.Button{
			ID:       b.ButtonID,
			Label:    b.Label,
			Style:    b.Style,
			Disabled: b.Disabled,
			Data:     b.Data,
		}
	}
	return &uicontroltypes.Control{
		MessageID: m.MessageID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Kind:      uicontroltypes.ControlKind(m.Kind),
		MatchID:   m.MatchID,
		Payload:   m.Payload,
		Buttons:   buttons,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
