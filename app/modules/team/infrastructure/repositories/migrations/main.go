package migrations

import (
	"context"
	"fmt"

	teamdb "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/repositories"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

// CreateTeamsTable creates the teams table from the bun model.
func CreateTeamsTable(ctx context.Context, db *bun.DB) error {
	fmt.Println("Creating teams table...")
	_, err := db.NewCreateTable().Model((*teamdb.Team)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create teams table: %w", err)
	}
	fmt.Println("teams table created successfully!")
	return nil
}

// DropTeamsTable drops the teams table.
func DropTeamsTable(ctx context.Context, db *bun.DB) error {
	fmt.Println("Dropping teams table...")
	_, err := db.NewDropTable().Model((*teamdb.Team)(nil)).IfExists().Cascade().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to drop teams table: %w", err)
	}
	fmt.Println("teams table dropped successfully!")
	return nil
}

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
	Migrations.MustRegister(CreateTeamsTable, DropTeamsTable)
}
