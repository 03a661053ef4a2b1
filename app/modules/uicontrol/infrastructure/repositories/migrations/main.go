package migrations

import (
	"context"
	"fmt"

	uicontroldb "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/repositories"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

// CreateControlTables creates the ui_controls and ui_control_buttons tables.
func CreateControlTables(ctx context.Context, db *bun.DB) error {
	fmt.Println("Creating ui_controls table...")
	_, err := db.NewCreateTable().Model((*uicontroldb.Control)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create ui_controls table: %w", err)
	}

	fmt.Println("Creating ui_control_buttons table...")
	_, err = db.NewCreateTable().Model((*uicontroldb.ControlButton)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create ui_control_buttons table: %w", err)
	}

	fmt.Println("Creating ui_controls indexes...")
	_, err = db.NewCreateIndex().
		Model((*uicontroldb.Control)(nil)).
		Index("ui_controls_active_guild_idx").
		IfNotExists().
		Column("guild_id").
		Where("is_active = true").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create ui_controls index: %w", err)
	}

	fmt.Println("uicontrol tables created successfully!")
	return nil
}

// DropControlTables drops the ui_controls and ui_control_buttons tables.
func DropControlTables(ctx context.Context, db *bun.DB) error {
	fmt.Println("Dropping uicontrol tables...")
	if _, err := db.NewDropTable().Model((*uicontroldb.ControlButton)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop ui_control_buttons table: %w", err)
	}
	if _, err := db.NewDropTable().Model((*uicontroldb.Control)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop ui_controls table: %w", err)
	}
	fmt.Println("uicontrol tables dropped successfully!")
	return nil
}

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
	Migrations.MustRegister(CreateControlTables, DropControlTables)
}
