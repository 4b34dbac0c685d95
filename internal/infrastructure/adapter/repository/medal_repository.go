package repository

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MedalRepository implements the medal inventory port using GORM
type MedalRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMedalRepository creates a new MedalRepository instance
func NewMedalRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *MedalRepository {
	return &MedalRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Count returns how many of the named medal the user owns
func (r *MedalRepository) Count(ctx context.Context, userID uint64, medalName string) (int, error) {
	var m model.UserMedal
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND medal_name = ?", userID, medalName).
		First(&m)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return m.Count, nil
}

// Grant adds one of the named medal to the user's inventory, creating the
// inventory row on first grant
func (r *MedalRepository) Grant(ctx context.Context, userID uint64, medalName string) error {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "medal_name"}},
		DoUpdates: clause.Assignments(map[string]any{"count": gorm.Expr("user_medals.count + 1"), "updated_at": now}),
	}).Create(&model.UserMedal{
		UserID:    userID,
		MedalName: medalName,
		Count:     1,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if result.Error != nil {
		r.logger.Error("Failed to grant medal", map[string]any{
			"user_id": userID,
			"medal":   medalName,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// Consume removes one of the named medal from the user's inventory. The
// guarded update keeps the count non-negative under concurrent gifts.
func (r *MedalRepository) Consume(ctx context.Context, userID uint64, medalName string) error {
	result := r.db.WithContext(ctx).Model(&model.UserMedal{}).
		Where("user_id = ? AND medal_name = ? AND count > 0", userID, medalName).
		Updates(map[string]any{
			"count":      gorm.Expr("count - 1"),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to consume medal", map[string]any{
			"user_id": userID,
			"medal":   medalName,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrMedalNotOwned
	}

	return nil
}
