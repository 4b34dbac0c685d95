package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/votequest/coin-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		user, err := NewUser(123, 100, tp)

		require.NoError(t, err)
		assert.Equal(t, uint64(123), user.ID)
		assert.Equal(t, int64(100), user.Coins())
		assert.Equal(t, int64(1), user.VotingPower)
		assert.Equal(t, 1, user.Level)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Zero ID rejected", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		user, err := NewUser(0, 100, tp)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Negative initial coins rejected", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		user, err := NewUser(123, -1, tp)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestApplyAmount(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Credit and debit", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		user, err := NewUser(1, 100, tp)
		require.NoError(t, err)

		require.NoError(t, user.ApplyAmount(50, tp))
		assert.Equal(t, int64(150), user.Coins())

		require.NoError(t, user.ApplyAmount(-150, tp))
		assert.Equal(t, int64(0), user.Coins())
		assert.Equal(t, uint64(2), user.TransactionCount)
	})

	t.Run("Insufficient balance leaves user untouched", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		user, err := NewUser(1, 30, tp)
		require.NoError(t, err)

		err = user.ApplyAmount(-31, tp)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(30), user.Coins())
		assert.Equal(t, uint64(0), user.TransactionCount)
	})

	t.Run("Overflow rejected", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		user, err := NewUser(1, 0, tp)
		require.NoError(t, err)
		user.SetCoins(math.MaxInt64 - 5)

		err = user.ApplyAmount(6, tp)

		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
		assert.Equal(t, int64(math.MaxInt64-5), user.Coins())
	})
}

func TestCanDeduct(t *testing.T) {
	tp := fixedTimeProvider(t, time.Now())
	user, err := NewUser(1, 30, tp)
	require.NoError(t, err)

	assert.True(t, user.CanDeduct(-30))
	assert.False(t, user.CanDeduct(-31))
}
