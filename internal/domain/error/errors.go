package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidType         = 4004
	CodeAmountTypeMismatch  = 4005
	CodeAmountOverflow      = 4006
	CodeMedalNotOwned       = 4007
	CodeConstraintViolation = 4050
	CodeUserNotFound        = 4040
	CodeMedalNotFound       = 4041
	CodeUserLocked          = 4230
	CodeUnauthorizedScan    = 4310

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a debit would drive a user's balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the transaction amount is zero
	ErrInvalidAmount = errors.New("amount must be a non-zero integer")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrAmountOverflow is returned when applying the amount would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidTransactionType is returned when the type tag is not one of the allowed values
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrAmountTypeMismatch is returned when the amount sign disagrees with the type tag
	ErrAmountTypeMismatch = errors.New("amount sign does not match transaction type")

	// ErrInvalidReason is returned when the reason code is empty
	ErrInvalidReason = errors.New("reason code cannot be empty")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMedalNotFound is returned when the requested medal is not in the catalog
	ErrMedalNotFound = errors.New("medal not found")

	// ErrMedalNotOwned is returned when a gift is attempted without owning the medal
	ErrMedalNotOwned = errors.New("medal not owned by user")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUserLocked is returned when a user row is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrUnauthorizedScan is returned when the scan trigger secret doesn't match
	ErrUnauthorizedScan = errors.New("invalid scan secret")

	// ErrDatabaseConnection is returned when there's a problem reaching the ledger store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidTransactionType), errors.Is(err, ErrInvalidReason):
		return CodeInvalidType
	case errors.Is(err, ErrAmountTypeMismatch):
		return CodeAmountTypeMismatch
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrMedalNotOwned):
		return CodeMedalNotOwned
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrMedalNotFound):
		return CodeMedalNotFound
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrUnauthorizedScan):
		return CodeUnauthorizedScan
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      int64
	CurrBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d, available %d",
		e.UserID, -e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance int64) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// LedgerError represents an error raised while applying a ledger transaction
type LedgerError struct {
	UserID      uint64
	Amount      int64
	Reason      string
	ReferenceID string
	Err         error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger operation failed for user %d (amount: %d, reason: %s): %v",
		e.UserID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "ledger_error",
		"user_id":      e.UserID,
		"amount":       e.Amount,
		"reason":       e.Reason,
		"reference_id": e.ReferenceID,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(userID uint64, amount int64, reason, referenceID string, err error) error {
	return &LedgerError{
		UserID:      userID,
		Amount:      amount,
		Reason:      reason,
		ReferenceID: referenceID,
		Err:         err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrMedalNotFound)
}

// IsUserLockedError checks if the error is related to a locked user row
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsValidationError checks if the error is a synchronous validation rejection
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrAmountTypeMismatch) ||
		errors.Is(err, ErrInvalidReason)
}
