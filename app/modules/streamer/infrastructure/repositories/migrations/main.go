package migrations

import (
	"context"
	"fmt"

	streamerdb "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/repositories"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

// CreateStreamerTables creates the match_streamers table and its indexes.
func CreateStreamerTables(ctx context.Context, db *bun.DB) error {
	fmt.Println("Creating match_streamers table...")
	_, err := db.NewCreateTable().Model((*streamerdb.MatchStreamer)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create match_streamers table: %w", err)
	}

	fmt.Println("Creating match_streamers indexes...")
	_, err = db.NewCreateIndex().
		Model((*streamerdb.MatchStreamer)(nil)).
		Index("match_streamers_side_idx").
		Unique().
		IfNotExists().
		Column("match_id", "team_side").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create match_streamers index: %w", err)
	}

	fmt.Println("streamer tables created successfully!")
	return nil
}

// DropStreamerTables drops the match_streamers table.
func DropStreamerTables(ctx context.Context, db *bun.DB) error {
	fmt.Println("Dropping streamer tables...")
	if _, err := db.NewDropTable().Model((*streamerdb.MatchStreamer)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop match_streamers table: %w", err)
	}
	fmt.Println("streamer tables dropped successfully!")
	return nil
}

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
	Migrations.MustRegister(CreateStreamerTables, DropStreamerTables)
}
