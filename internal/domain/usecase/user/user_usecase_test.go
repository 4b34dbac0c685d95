package user

import (
	"context"
	"testing"
	"time"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	coremocks "github.com/votequest/coin-service/mocks/port/core"
	persistencemocks "github.com/votequest/coin-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func fixedTime(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return tp
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful creation", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 123 && u.Coins() == 100
		})).Return(nil).Once()

		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		user, err := uc.CreateUser(ctx, 123, 100)

		require.NoError(t, err)
		assert.Equal(t, uint64(123), user.ID)
		assert.Equal(t, int64(100), user.Coins())
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		user, err := uc.CreateUser(ctx, 0, 100)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate user propagates", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		repo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateUser).Once()
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		user, err := uc.CreateUser(ctx, 123, 100)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestGetUserBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns cached balance", func(t *testing.T) {
		stored, err := entity.NewUser(123, 250, fixedTime(t))
		require.NoError(t, err)

		repo := persistencemocks.NewMockUserRepository(t)
		repo.EXPECT().GetByID(ctx, uint64(123)).Return(stored, nil).Once()
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		resp, err := uc.GetUserBalance(ctx, 123)

		require.NoError(t, err)
		assert.Equal(t, uint64(123), resp.UserID)
		assert.Equal(t, int64(250), resp.Balance)
	})

	t.Run("Zero ID rejected before hitting the store", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		resp, err := uc.GetUserBalance(ctx, 0)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Unknown user", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		repo.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		resp, err := uc.GetUserBalance(ctx, 9)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		stored, err := entity.NewUser(123, 0, fixedTime(t))
		require.NoError(t, err)

		repo := persistencemocks.NewMockUserRepository(t)
		repo.EXPECT().GetByID(ctx, uint64(123)).Return(stored, nil).Once()
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		exists, err := uc.UserExists(ctx, 123)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Missing user is not an error", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		repo.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		exists, err := uc.UserExists(ctx, 9)

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		repo := persistencemocks.NewMockUserRepository(t)
		repo.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrDatabaseConnection).Once()
		uc := NewUserUseCase(repo, fixedTime(t), relaxedLogger(t))

		exists, err := uc.UserExists(ctx, 9)

		assert.False(t, exists)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
