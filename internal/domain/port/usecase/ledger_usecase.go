package usecase

import (
	"context"

	"github.com/votequest/coin-service/internal/domain/entity"
)

// ApplyRequest is a request to apply a single coin-changing action
type ApplyRequest struct {
	UserID      uint64
	Amount      int64 // Signed whole coins; positive credits, negative debits
	Type        entity.TransactionType
	Reason      string
	ReferenceID string // Optional; non-empty enables idempotent dedup on (user, reason, reference)
	Metadata    map[string]string
}

// ApplyResult is the outcome of applying a transaction
type ApplyResult struct {
	Transaction *entity.Transaction
	NewBalance  int64
	// Duplicate is true when the apply was suppressed by the idempotency key
	// and Transaction is the previously created row. Not an error.
	Duplicate bool
}

// LedgerUseCase defines the transaction engine operations
type LedgerUseCase interface {
	// ApplyTransaction validates and applies a coin-changing action exactly
	// once, appending a receipted ledger row and updating the cached balance
	// atomically
	ApplyTransaction(ctx context.Context, req ApplyRequest) (*ApplyResult, error)

	// GetTransaction fetches a ledger row by ID, for receipt verification
	GetTransaction(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Reconcile resets a user's cached balance to the receipt-derived value,
	// recording the correction as a receipted reconciliation transaction.
	// Returns the appended transaction, or nil if there was no drift.
	Reconcile(ctx context.Context, userID uint64, scanID string) (*entity.Transaction, error)
}
