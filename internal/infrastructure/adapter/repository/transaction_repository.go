package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the ledger repository port using GORM.
// The ledger is append-only: this repository exposes no update or delete.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:      txn.UserID,
		Amount:      txn.Amount,
		Type:        string(txn.Type),
		Reason:      txn.Reason,
		ReferenceID: txn.ReferenceID,
		Metadata:    txn.Metadata,
		ReceiptHash: txn.ReceiptHash,
		CreatedAt:   txn.CreatedAt,
		Verified:    txn.Verified,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Reason:      m.Reason,
		ReferenceID: m.ReferenceID,
		Metadata:    m.Metadata,
		ReceiptHash: m.ReceiptHash,
		CreatedAt:   m.CreatedAt,
		Verified:    m.Verified,
	}
}

// Create appends a new ledger row. A dedup index conflict surfaces as
// ErrConstraintViolation so the engine can resolve the raced duplicate.
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Ledger insert hit dedup index", map[string]any{
				"user_id":      txn.UserID,
				"reason":       txn.Reason,
				"reference_id": txn.ReferenceID,
			})
			return errs.ErrConstraintViolation
		}

		r.logger.Error("Failed to append ledger row", map[string]any{
			"user_id": txn.UserID,
			"reason":  txn.Reason,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = txnModel.ID
	return nil
}

// GetByID retrieves a ledger row by its identifier
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).First(&txnModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&txnModel), nil
}

// GetByDedupKey retrieves the transaction matching an idempotency key
func (r *TransactionRepository) GetByDedupKey(ctx context.Context, userID uint64, reason, referenceID string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND reason = ? AND reference_id = ?", userID, reason, referenceID).
		First(&txnModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to look up dedup key", map[string]any{
			"user_id":      userID,
			"reason":       reason,
			"reference_id": referenceID,
			"error":        result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&txnModel), nil
}

// SumAmountsByUser returns the signed sum and count of the user's ledger
// entries. Reconciliation rows are excluded: they record cache resets, not
// coin movement, and counting them would re-flag every corrected user.
func (r *TransactionRepository) SumAmountsByUser(ctx context.Context, userID uint64) (int64, int64, error) {
	type aggregate struct {
		Sum   int64
		Count int64
	}

	var agg aggregate
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS sum, COUNT(*) AS count").
		Where("user_id = ? AND reason <> ?", userID, entity.ReasonReconciliation).
		Scan(&agg)

	if result.Error != nil {
		r.logger.Error("Failed to sum ledger amounts", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return 0, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return agg.Sum, agg.Count, nil
}
