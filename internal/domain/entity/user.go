package entity

import (
	"math"
	"time"

	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
)

// User represents an account with a coin balance. The balance field is a
// cached materialization of the ledger sum; the ledger is the source of truth
// and the auditor reconciles the two. VotingPower, Level and XP belong to the
// progression subsystem and are carried but never mutated here.
type User struct {
	ID               uint64
	coins            int64 // Cached coin balance, private to force mutation through Apply/Set
	VotingPower      int64
	Level            int
	XP               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	TransactionCount uint64
}

// NewUser creates a new user with the given ID and initial coin balance
func NewUser(id uint64, initialCoins int64, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if initialCoins < 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &User{
		ID:          id,
		coins:       initialCoins,
		VotingPower: 1,
		Level:       1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Coins returns the current cached coin balance
func (u *User) Coins() int64 {
	return u.coins
}

// SetCoins overwrites the cached balance directly. Reserved for repositories
// hydrating entities from storage; business mutations go through ApplyAmount.
func (u *User) SetCoins(coins int64) {
	u.coins = coins
}

// CanDeduct checks whether a debit of the given (negative) amount would keep
// the balance non-negative
func (u *User) CanDeduct(amount int64) bool {
	return u.coins+amount >= 0
}

// ApplyAmount applies a signed amount to the cached balance. Debits that
// would drive the balance negative and credits that would overflow are
// rejected without mutating the user.
func (u *User) ApplyAmount(amount int64, timeProvider coreport.TimeProvider) error {
	if amount > 0 && u.coins > math.MaxInt64-amount {
		return errs.ErrAmountOverflow
	}
	newBalance := u.coins + amount
	if newBalance < 0 {
		return errs.ErrInsufficientBalance
	}

	u.coins = newBalance
	u.UpdatedAt = timeProvider.Now()
	u.TransactionCount++
	return nil
}
