package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"invalid user ID", ErrInvalidUserID, CodeInvalidUserID},
		{"invalid type", ErrInvalidTransactionType, CodeInvalidType},
		{"invalid reason", ErrInvalidReason, CodeInvalidType},
		{"sign mismatch", ErrAmountTypeMismatch, CodeAmountTypeMismatch},
		{"overflow", ErrAmountOverflow, CodeAmountOverflow},
		{"user not found", ErrUserNotFound, CodeUserNotFound},
		{"medal not found", ErrMedalNotFound, CodeMedalNotFound},
		{"medal not owned", ErrMedalNotOwned, CodeMedalNotOwned},
		{"user locked", ErrUserLocked, CodeUserLocked},
		{"unauthorized scan", ErrUnauthorizedScan, CodeUnauthorizedScan},
		{"constraint violation", ErrConstraintViolation, CodeConstraintViolation},
		{"unknown error", errors.New("something else"), CodeInternalServer},
		{"wrapped error keeps its code", fmt.Errorf("context: %w", ErrUserNotFound), CodeUserNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(42, -100, 30)

	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.True(t, IsInsufficientBalanceError(err))
	assert.Contains(t, err.Error(), "user 42")
	assert.Contains(t, err.Error(), "required 100")
	assert.Contains(t, err.Error(), "available 30")

	var detailed *InsufficientBalanceError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, CodeInsufficientBalance, detailed.LogFields()["error_code"])
}

func TestLedgerError(t *testing.T) {
	inner := ErrDatabaseConnection
	err := NewLedgerError(42, -100, "vote_cast", "vote-1", inner)

	assert.True(t, errors.Is(err, ErrDatabaseConnection))
	assert.Contains(t, err.Error(), "user 42")
	assert.Contains(t, err.Error(), "vote_cast")

	var ledgerErr *LedgerError
	assert.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, "vote-1", ledgerErr.ReferenceID)
}

func TestClassificationHelpers(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidAmount))
	assert.True(t, IsValidationError(fmt.Errorf("%w: TRANSFER", ErrInvalidTransactionType)))
	assert.False(t, IsValidationError(ErrUserNotFound))

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.True(t, IsNotFoundError(ErrMedalNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidAmount))

	assert.True(t, IsUserLockedError(ErrUserLocked))
	assert.True(t, IsUserNotFoundError(fmt.Errorf("get: %w", ErrUserNotFound)))
}
