package audit

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

func testUser(t *testing.T, id uint64, coins int64) *entity.User {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	user, err := entity.NewUser(id, coins, tp)
	require.NoError(t, err)
	return user
}

func TestAuditUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Healthy user", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		txnRepo := persistencemocks.NewMockTransactionRepository(t)
		userRepo.EXPECT().GetByID(ctx, uint64(42)).Return(testUser(t, 42, 120), nil).Once()
		txnRepo.EXPECT().SumAmountsByUser(ctx, uint64(42)).Return(int64(120), int64(8), nil).Once()

		a := NewAuditor(userRepo, txnRepo, relaxedLogger(t))

		result, err := a.AuditUser(ctx, 42)

		require.NoError(t, err)
		assert.True(t, result.Healthy())
		assert.Equal(t, int64(120), result.StoredBalance)
		assert.Equal(t, int64(120), result.CalculatedBalance)
		assert.Equal(t, int64(0), result.Discrepancy)
		assert.Equal(t, int64(8), result.ReceiptCount)
	})

	t.Run("Drift is reported, not an error", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		txnRepo := persistencemocks.NewMockTransactionRepository(t)
		userRepo.EXPECT().GetByID(ctx, uint64(7)).Return(testUser(t, 7, 500), nil).Once()
		txnRepo.EXPECT().SumAmountsByUser(ctx, uint64(7)).Return(int64(50), int64(3), nil).Once()

		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Warn("Balance drift detected", mock.Anything).Once()

		a := NewAuditor(userRepo, txnRepo, logger)

		result, err := a.AuditUser(ctx, 7)

		require.NoError(t, err)
		assert.False(t, result.Healthy())
		assert.Equal(t, int64(450), result.Discrepancy)
	})

	t.Run("Unknown user propagates", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		txnRepo := persistencemocks.NewMockTransactionRepository(t)
		userRepo.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		a := NewAuditor(userRepo, txnRepo, relaxedLogger(t))

		result, err := a.AuditUser(ctx, 9)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("User with no receipts and zero balance is healthy", func(t *testing.T) {
		userRepo := persistencemocks.NewMockUserRepository(t)
		txnRepo := persistencemocks.NewMockTransactionRepository(t)
		userRepo.EXPECT().GetByID(ctx, uint64(11)).Return(testUser(t, 11, 0), nil).Once()
		txnRepo.EXPECT().SumAmountsByUser(ctx, uint64(11)).Return(int64(0), int64(0), nil).Once()

		a := NewAuditor(userRepo, txnRepo, relaxedLogger(t))

		result, err := a.AuditUser(ctx, 11)

		require.NoError(t, err)
		assert.True(t, result.Healthy())
		assert.Equal(t, int64(0), result.ReceiptCount)
	})
}
