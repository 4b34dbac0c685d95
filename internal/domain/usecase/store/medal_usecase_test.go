package store

import (
	"context"
	"strconv"
	"testing"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
	coremocks "github.com/votequest/coin-service/mocks/port/core"
	persistencemocks "github.com/votequest/coin-service/mocks/port/persistence"
	usecasemocks "github.com/votequest/coin-service/mocks/port/usecase"
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

type medalFixture struct {
	medalRepo *persistencemocks.MockMedalRepository
	ledger    *usecasemocks.MockLedgerUseCase
	service   *MedalService
}

func newMedalFixture(t *testing.T) *medalFixture {
	f := &medalFixture{
		medalRepo: persistencemocks.NewMockMedalRepository(t),
		ledger:    usecasemocks.NewMockLedgerUseCase(t),
	}
	f.service = NewMedalService(nil, f.medalRepo, f.ledger, relaxedLogger(t))
	return f
}

func TestPurchaseMedal(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful purchase debits and grants", func(t *testing.T) {
		f := newMedalFixture(t)
		debit := &entity.Transaction{ID: 300, UserID: 42, Amount: -50}

		f.ledger.EXPECT().ApplyTransaction(ctx, mock.MatchedBy(func(req portuse.ApplyRequest) bool {
			return req.UserID == 42 &&
				req.Amount == -50 &&
				req.Type == entity.TypeSpend &&
				req.Reason == "MEDAL_PURCHASE:bronze_gavel" &&
				req.ReferenceID != ""
		})).Return(&portuse.ApplyResult{Transaction: debit, NewBalance: 70}, nil).Once()
		f.medalRepo.EXPECT().Grant(ctx, uint64(42), "bronze_gavel").Return(nil).Once()

		result, err := f.service.PurchaseMedal(ctx, 42, "bronze_gavel")

		require.NoError(t, err)
		assert.Equal(t, "bronze_gavel", result.Medal.Name)
		assert.Equal(t, int64(70), result.NewBalance)
		assert.Same(t, debit, result.Transaction)
	})

	t.Run("Unknown medal", func(t *testing.T) {
		f := newMedalFixture(t)

		result, err := f.service.PurchaseMedal(ctx, 42, "platinum_gavel")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMedalNotFound)
		f.ledger.AssertNotCalled(t, "ApplyTransaction", mock.Anything, mock.Anything)
	})

	t.Run("Insufficient balance propagates without granting", func(t *testing.T) {
		f := newMedalFixture(t)

		f.ledger.EXPECT().ApplyTransaction(ctx, mock.Anything).
			Return(nil, errs.NewInsufficientBalanceError(42, -1000, 30)).Once()

		result, err := f.service.PurchaseMedal(ctx, 42, "golden_gavel")

		assert.Nil(t, result)
		assert.True(t, errs.IsInsufficientBalanceError(err))
		f.medalRepo.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed grant refunds the debit", func(t *testing.T) {
		f := newMedalFixture(t)
		debit := &entity.Transaction{ID: 301, UserID: 42, Amount: -50}

		f.ledger.EXPECT().ApplyTransaction(ctx, mock.MatchedBy(func(req portuse.ApplyRequest) bool {
			return req.Amount == -50 && req.Type == entity.TypeSpend
		})).Return(&portuse.ApplyResult{Transaction: debit, NewBalance: 70}, nil).Once()
		f.medalRepo.EXPECT().Grant(ctx, uint64(42), "bronze_gavel").
			Return(errs.ErrDatabaseConnection).Once()
		f.ledger.EXPECT().ApplyTransaction(ctx, mock.MatchedBy(func(req portuse.ApplyRequest) bool {
			return req.Amount == 50 &&
				req.Type == entity.TypeRefund &&
				req.Reason == "MEDAL_PURCHASE:bronze_gavel"
		})).Return(&portuse.ApplyResult{}, nil).Once()

		result, err := f.service.PurchaseMedal(ctx, 42, "bronze_gavel")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestGiftMedal(t *testing.T) {
	ctx := context.Background()

	t.Run("Gift consumes inventory and credits recipient", func(t *testing.T) {
		f := newMedalFixture(t)
		credit := &entity.Transaction{ID: 400, UserID: 9, Amount: 150}

		f.medalRepo.EXPECT().Consume(ctx, uint64(42), "golden_gavel").Return(nil).Once()
		f.ledger.EXPECT().ApplyTransaction(ctx, mock.MatchedBy(func(req portuse.ApplyRequest) bool {
			return req.UserID == 9 &&
				req.Amount == 150 && // floor(1000 * 0.15)
				req.Type == entity.TypeGift &&
				req.Reason == "MEDAL_GIFT:golden_gavel" &&
				req.Metadata["sender"] == strconv.FormatUint(42, 10)
		})).Return(&portuse.ApplyResult{Transaction: credit, NewBalance: 250}, nil).Once()

		result, err := f.service.GiftMedal(ctx, 42, 9, "golden_gavel")

		require.NoError(t, err)
		assert.Equal(t, int64(150), result.RewardAmount)
		assert.Equal(t, int64(250), result.RecipientBalance)
		assert.Same(t, credit, result.Transaction)
	})

	t.Run("Sender without the medal cannot gift", func(t *testing.T) {
		f := newMedalFixture(t)

		f.medalRepo.EXPECT().Consume(ctx, uint64(42), "orator").
			Return(errs.ErrMedalNotOwned).Once()

		result, err := f.service.GiftMedal(ctx, 42, 9, "orator")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMedalNotOwned)
		f.ledger.AssertNotCalled(t, "ApplyTransaction", mock.Anything, mock.Anything)
	})

	t.Run("Failed credit returns the medal to the sender", func(t *testing.T) {
		f := newMedalFixture(t)

		f.medalRepo.EXPECT().Consume(ctx, uint64(42), "golden_gavel").Return(nil).Once()
		f.ledger.EXPECT().ApplyTransaction(ctx, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()
		f.medalRepo.EXPECT().Grant(ctx, uint64(42), "golden_gavel").Return(nil).Once()

		result, err := f.service.GiftMedal(ctx, 42, 9, "golden_gavel")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Unknown medal", func(t *testing.T) {
		f := newMedalFixture(t)

		result, err := f.service.GiftMedal(ctx, 42, 9, "platinum_gavel")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMedalNotFound)
	})

	t.Run("Zero-reward medal is consumed without a credit", func(t *testing.T) {
		medalRepo := persistencemocks.NewMockMedalRepository(t)
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		catalog := []entity.Medal{{Name: "plain_ribbon", Cost: 10, GiftRewardRatio: 0}}
		service := NewMedalService(catalog, medalRepo, ledger, relaxedLogger(t))

		medalRepo.EXPECT().Consume(ctx, uint64(42), "plain_ribbon").Return(nil).Once()

		result, err := service.GiftMedal(ctx, 42, 9, "plain_ribbon")

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.RewardAmount)
		assert.NotEmpty(t, result.GiftID)
		ledger.AssertNotCalled(t, "ApplyTransaction", mock.Anything, mock.Anything)
	})
}
