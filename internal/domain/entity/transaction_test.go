package entity

import (
	"testing"
	"time"

	errs "github.com/votequest/coin-service/internal/domain/error"
	coremocks "github.com/votequest/coin-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTimeProvider(t *testing.T, at time.Time) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(at).Maybe()
	return tp
}

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("Creates receipted transaction", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewTransaction(42, 25, TypeEarn, ReasonDebateWon, "debate-991", nil, tp)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), txn.UserID)
		assert.Equal(t, int64(25), txn.Amount)
		assert.Equal(t, TypeEarn, txn.Type)
		assert.Equal(t, fixedTime, txn.CreatedAt)
		assert.Equal(t, ComputeReceiptHash(txn.ReceiptInput()), txn.ReceiptHash)
	})

	t.Run("Validation failures", func(t *testing.T) {
		tests := []struct {
			name        string
			userID      uint64
			amount      int64
			txType      TransactionType
			reason      string
			expectedErr error
		}{
			{"zero user ID", 0, 25, TypeEarn, ReasonDebateWon, errs.ErrInvalidUserID},
			{"zero amount", 42, 0, TypeEarn, ReasonDebateWon, errs.ErrInvalidAmount},
			{"empty reason", 42, 25, TypeEarn, "", errs.ErrInvalidReason},
			{"unknown type", 42, 25, "TRANSFER", ReasonDebateWon, errs.ErrInvalidTransactionType},
			{"positive SPEND", 42, 25, TypeSpend, ReasonQuadraticVote, errs.ErrAmountTypeMismatch},
			{"negative EARN", 42, -25, TypeEarn, ReasonDebateWon, errs.ErrAmountTypeMismatch},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				tp := fixedTimeProvider(t, fixedTime)

				txn, err := NewTransaction(tc.userID, tc.amount, tc.txType, tc.reason, "", nil, tp)

				assert.Nil(t, txn)
				assert.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})
}

func TestValidateAmountSign(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		txType  TransactionType
		wantErr bool
	}{
		{"positive EARN", 10, TypeEarn, false},
		{"positive GIFT", 10, TypeGift, false},
		{"positive REFUND", 10, TypeRefund, false},
		{"negative SPEND", -10, TypeSpend, false},
		{"positive ADMIN_ADJUSTMENT", 10, TypeAdminAdjustment, false},
		{"negative ADMIN_ADJUSTMENT", -10, TypeAdminAdjustment, false},
		{"positive SPEND", 10, TypeSpend, true},
		{"negative EARN", -10, TypeEarn, true},
		{"negative GIFT", -10, TypeGift, true},
		{"negative REFUND", -10, TypeRefund, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmountSign(tc.amount, tc.txType)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrAmountTypeMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsStandardReason(t *testing.T) {
	assert.True(t, IsStandardReason(ReasonVoteCast))
	assert.True(t, IsStandardReason(ReasonReconciliation))
	assert.True(t, IsStandardReason(ReasonPrefixMedalPurchase+"golden_gavel"))
	assert.True(t, IsStandardReason(ReasonPrefixMedalGift+"orator"))

	assert.False(t, IsStandardReason("seasonal_event_2024"))
	assert.False(t, IsStandardReason(ReasonPrefixMedalPurchase)) // bare prefix, no medal
	assert.False(t, IsStandardReason(""))
}

func TestCreditDebit(t *testing.T) {
	credit := &Transaction{Amount: 5}
	debit := &Transaction{Amount: -5}

	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
}
