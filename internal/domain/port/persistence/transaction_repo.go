package persistence

import (
	"context"

	"github.com/votequest/coin-service/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the append-only
// coin ledger. Historical rows are never updated or deleted; administrative
// corrections append compensating transactions instead.
type TransactionRepository interface {
	// Create appends a new ledger row. The unique index on
	// (user_id, reason, reference_id) enforces the idempotency contract for
	// one-shot reasons at the storage level.
	//
	// Possible errors:
	// - ErrConstraintViolation: If the dedup key already exists
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a ledger row by its identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByDedupKey retrieves the transaction matching an idempotency key.
	// Used to return the original row when a retried apply is suppressed.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no matching row exists
	// - ErrDatabaseConnection: If database connection fails
	GetByDedupKey(ctx context.Context, userID uint64, reason, referenceID string) (*entity.Transaction, error)

	// SumAmountsByUser returns the signed sum of all transaction amounts for
	// the user together with the row count. This is the auditor's
	// receipt-derived balance.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	SumAmountsByUser(ctx context.Context, userID uint64) (sum int64, count int64, err error)
}
