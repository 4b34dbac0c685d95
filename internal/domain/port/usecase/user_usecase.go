package usecase

import (
	"context"

	"github.com/votequest/coin-service/internal/domain/entity"
)

// UserBalanceResponse represents the standardized balance response
type UserBalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance int64  `json:"balance"`
}

// UserUseCase defines user account operations needed by the ledger core
type UserUseCase interface {
	// GetUserBalance retrieves the cached coin balance for a user
	GetUserBalance(ctx context.Context, userID uint64) (*UserBalanceResponse, error)

	// CreateUser creates a new user with the given ID and initial coin balance
	CreateUser(ctx context.Context, id uint64, initialCoins int64) (*entity.User, error)

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
