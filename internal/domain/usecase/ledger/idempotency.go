package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	"github.com/votequest/coin-service/internal/domain/port/persistence"
)

// IdempotencyHandler suppresses duplicate application of one-shot actions.
// The dedup key is (userID, reason, referenceID); requests with an empty
// referenceID represent repeatable actions and are never deduplicated.
type IdempotencyHandler struct {
	transactionRepo persistence.TransactionRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(transactionRepo persistence.TransactionRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		transactionRepo: transactionRepo,
	}
}

// CheckIdempotency looks up a prior transaction with the same dedup key.
// Returns the transaction and true when the action was already applied.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	userID uint64,
	reason, referenceID string,
) (*entity.Transaction, bool, error) {
	if referenceID == "" {
		return nil, false, nil
	}

	txn, err := h.transactionRepo.GetByDedupKey(ctx, userID, reason, referenceID)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	return txn, true, nil
}
