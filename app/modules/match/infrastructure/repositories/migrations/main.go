package migrations

import (
	"context"
	"fmt"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

// CreateMatchTables creates the matches and tournament_settings tables.
func CreateMatchTables(ctx context.Context, db *bun.DB) error {
	fmt.Println("Creating matches table...")
	_, err := db.NewCreateTable().Model((*matchdb.Match)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create matches table: %w", err)
	}

	fmt.Println("Creating tournament_settings table...")
	_, err = db.NewCreateTable().Model((*matchdb.Setting)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create tournament_settings table: %w", err)
	}

	fmt.Println("match tables created successfully!")
	return nil
}

// DropMatchTables drops the matches and tournament_settings tables.
func DropMatchTables(ctx context.Context, db *bun.DB) error {
	fmt.Println("Dropping match tables...")
	if _, err := db.NewDropTable().Model((*matchdb.Match)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop matches table: %w", err)
	}
	if _, err := db.NewDropTable().Model((*matchdb.Setting)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop tournament_settings table: %w", err)
	}
	fmt.Println("match tables dropped successfully!")
	return nil
}

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
	Migrations.MustRegister(CreateMatchTables, DropMatchTables)
}
