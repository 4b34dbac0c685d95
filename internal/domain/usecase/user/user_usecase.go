package user

import (
	"context"
	"errors"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/domain/port/persistence"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
)

// UserUseCase implements user account operations over the user repository.
// It only ever touches the coin balance field; progression fields belong to
// another subsystem.
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUserBalance retrieves the cached coin balance for a user
func (uc *UserUseCase) GetUserBalance(ctx context.Context, userID uint64) (*portuse.UserBalanceResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &portuse.UserBalanceResponse{
		UserID:  user.ID,
		Balance: user.Coins(),
	}, nil
}

// CreateUser creates a new user with the given ID and initial coin balance
func (uc *UserUseCase) CreateUser(ctx context.Context, id uint64, initialCoins int64) (*entity.User, error) {
	user, err := entity.NewUser(id, initialCoins, uc.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"coins":   user.Coins(),
	})

	return user, nil
}

// UserExists checks if a user exists with the given ID
func (uc *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	_, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
