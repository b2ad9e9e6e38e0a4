package database

import (
	"fmt"
	"log/slog"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/model"

	"gorm.io/gorm"
)

// Models lists every persisted model in creation order.
func Models() []any {
	return []any{
		&model.Member{},
		&model.Event{},
		&model.Announcement{},
	}
}

// Migrate drops and recreates all tables when DB_AUTO_MIGRATE is enabled.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	if cfg.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is blocked in production")
	}

	slog.Warn("database migration started, all tables will be dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	models := Models()
	migrator := db.Migrator()
	// Reverse creation order.
	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !migrator.HasTable(m) {
			continue
		}
		if err := migrator.DropTable(m); err != nil {
			slog.Debug("drop table failed", "model", fmt.Sprintf("%T", m), "error", err)
		} else {
			slog.Debug("table dropped", "model", fmt.Sprintf("%T", m))
		}
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("database migration completed")
	return nil
}

// AutoMigrate creates missing tables, columns and indexes without dropping data.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table migrated", "model", fmt.Sprintf("%T", m))
	}
	return nil
}
