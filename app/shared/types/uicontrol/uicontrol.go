package uicontroltypes

import (
	"encoding/json"
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// ControlKind identifies what a persisted interactive message is for.
// The set is closed; restoration refuses kinds it has no factory for.
type ControlKind string

const (
	KindTimeOffer     ControlKind = "time_offer"
	KindServerOffer   ControlKind = "server_offer"
	KindResultSubmit  ControlKind = "result_submit"
	KindResultConfirm ControlKind = "result_confirm"
	KindStreamerPanel ControlKind = "streamer_panel"
	KindMatchAdmin    ControlKind = "match_admin"
)

// Valid reports whether k is a known control kind.
func (k ControlKind) Valid() bool {
	switch k {
	case KindTimeOffer, KindServerOffer, KindResultSubmit, KindResultConfirm,
		KindStreamerPanel, KindMatchAdmin:
		return true
	}
	return false
}

// Button is the persisted state of a single component on a control message.
type Button struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Style    string            `json:"style"`
	Disabled bool              `json:"disabled"`
	Data     map[string]string `json:"data,omitempty"`
}

// Control is the durable record of an interactive message. Everything needed
// to rebuild the message's handlers after a restart lives here; the Discord
// message itself is never fetched during restoration.
type Control struct {
	MessageID sharedtypes.MessageID `json:"message_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	Kind      ControlKind           `json:"kind"`
	MatchID   sharedtypes.MatchID   `json:"match_id"`
	Payload   json.RawMessage       `json:"payload,omitempty"`
	Buttons   []Button              `json:"buttons,omitempty"`
	IsActive  bool                  `json:"is_active"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// KindStats counts restoration outcomes for one control kind.
type KindStats struct {
	Restored int `json:"restored"`
	Failed   int `json:"failed"`
}

// RestoreStats summarizes a startup restoration pass.
type RestoreStats struct {
	Total    int                       `json:"total"`
	Restored int                       `json:"restored"`
	Failed   int                       `json:"failed"`
	Purged   int                       `json:"purged"`
	ByKind   map[ControlKind]KindStats `json:"by_kind"`
}
