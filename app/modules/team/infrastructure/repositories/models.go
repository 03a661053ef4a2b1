package teamdb

import (
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/uptrace/bun"
)

// Team mirrors one configured team into the store. The Discord role ID is the
// stable key; names may change between seasons.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID        sharedtypes.TeamID `bun:"id,pk,autoincrement"`
	Name      string             `bun:"name,notnull"`
	RoleID    sharedtypes.RoleID `bun:"role_id,notnull,unique,type:varchar(20)"`
	Active    bool               `bun:"active,notnull,default:true"`
	CreatedAt time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
