package audit

import (
	"context"

	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/domain/port/persistence"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
)

// Auditor recomputes a user's expected balance from the ledger and compares
// it with the stored cache. Read-only; discrepancies are data, not errors.
type Auditor struct {
	userRepo persistence.UserRepository
	txnRepo  persistence.TransactionRepository
	logger   coreport.Logger
}

// NewAuditor creates a balance auditor
func NewAuditor(
	userRepo persistence.UserRepository,
	txnRepo persistence.TransactionRepository,
	logger coreport.Logger,
) *Auditor {
	return &Auditor{
		userRepo: userRepo,
		txnRepo:  txnRepo,
		logger:   logger,
	}
}

// AuditUser fetches the user's cached balance and the signed sum of their
// ledger entries. Discrepancy is stored minus calculated; zero is healthy.
func (a *Auditor) AuditUser(ctx context.Context, userID uint64) (*portuse.AuditResult, error) {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	calculated, count, err := a.txnRepo.SumAmountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &portuse.AuditResult{
		UserID:            userID,
		StoredBalance:     user.Coins(),
		CalculatedBalance: calculated,
		Discrepancy:       user.Coins() - calculated,
		ReceiptCount:      count,
	}

	if !result.Healthy() {
		a.logger.Warn("Balance drift detected", map[string]any{
			"user_id":            userID,
			"stored_balance":     result.StoredBalance,
			"calculated_balance": result.CalculatedBalance,
			"discrepancy":        result.Discrepancy,
			"receipt_count":      result.ReceiptCount,
		})
	}

	return result, nil
}
