package bundb

import (
	"context"
	"database/sql"
	"fmt"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	streamerdb "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/repositories"
	teamdb "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/repositories"
	uicontroldb "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/repositories"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DBService bundles the per-module repositories over one bun connection.
type DBService struct {
	TeamDB        *teamdb.TeamDBImpl
	MatchDB       *matchdb.MatchDBImpl
	SettingsDB    *matchdb.SettingsDBImpl
	NegotiationDB *negotiationdb.NegotiationDBImpl
	ControlDB     *uicontroldb.ControlDBImpl
	StreamerDB    *streamerdb.StreamerDBImpl
	db            *bun.DB
}

// GetDB returns the underlying database handle.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService opens the database and wires every repository onto it.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	return &DBService{
		TeamDB:        &teamdb.TeamDBImpl{DB: db},
		MatchDB:       &matchdb.MatchDBImpl{DB: db},
		SettingsDB:    &matchdb.SettingsDBImpl{DB: db},
		NegotiationDB: &negotiationdb.NegotiationDBImpl{DB: db},
		ControlDB:     &uicontroldb.ControlDBImpl{DB: db},
		StreamerDB:    &streamerdb.StreamerDBImpl{DB: db},
		db:            db,
	}, nil
}
