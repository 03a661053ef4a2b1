package migrations

import (
	"context"
	"fmt"

	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

// CreateNegotiationsTable creates the negotiations table and the partial
// unique index that allows at most one open negotiation per (match, kind).
func CreateNegotiationsTable(ctx context.Context, db *bun.DB) error {
	fmt.Println("Creating negotiations table...")
	_, err := db.NewCreateTable().Model((*negotiationdb.Negotiation)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create negotiations table: %w", err)
	}

	_, err = db.NewCreateIndex().
		Model((*negotiationdb.Negotiation)(nil)).
		Index("negotiations_open_match_kind_idx").
		Unique().
		IfNotExists().
		Column("match_id", "kind").
		Where("state = 'open'").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create open negotiation index: %w", err)
	}

	fmt.Println("negotiations table created successfully!")
	return nil
}

// DropNegotiationsTable drops the negotiations table.
func DropNegotiationsTable(ctx context.Context, db *bun.DB) error {
	fmt.Println("Dropping negotiations table...")
	_, err := db.NewDropTable().Model((*negotiationdb.Negotiation)(nil)).IfExists().Cascade().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to drop negotiations table: %w", err)
	}
	fmt.Println("negotiations table dropped successfully!")
	return nil
}

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
	Migrations.MustRegister(CreateNegotiationsTable, DropNegotiationsTable)
}
