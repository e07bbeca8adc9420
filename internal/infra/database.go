package infra

import (
	"fmt"
	"time"

	"github.com/chebellamachina/VC-LM/internal/config"
	"github.com/chebellamachina/VC-LM/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres pool and migrates the schema.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("conectando a postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obteniendo pool sql: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Proveedor{},
		&model.SolicitudPago{},
	); err != nil {
		return nil, fmt.Errorf("migrando esquema: %w", err)
	}

	return db, nil
}
