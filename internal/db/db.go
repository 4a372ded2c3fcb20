package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-turnos/internal/config"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// schemaPatches run after AutoMigrate. They must be idempotent.
var schemaPatches = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'turnos_barbero_no_overlap'
		) THEN
			ALTER TABLE turnos
				ADD CONSTRAINT turnos_barbero_no_overlap
				EXCLUDE USING gist (barbero WITH =, tstzrange(fecha, fin, '[)') WITH &&);
		END IF;
	END
	$$`,
}

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt: true,
	}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Msg("database connected and migrated")
	return db, nil
}

// Migrate creates the tables and the no-overlap constraint on turnos.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range schemaPatches {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}

	return nil
}
