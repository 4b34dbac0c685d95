package database

import (
	"fmt"

	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. The dedup index on transactions is
// declared on the model; AutoMigrate creates it together with the tables.
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running schema migration", nil)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.UserMedal{},
	); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	logger.Info("Schema migration completed", nil)
	return nil
}
