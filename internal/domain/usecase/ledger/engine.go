package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/domain/port/persistence"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
)

// Engine is the transaction engine: it validates and applies a single
// coin-changing action exactly once, producing a receipted ledger row and the
// updated cached balance as one atomic store transaction. Per-user ordering
// comes from the row-level lock taken on the user inside the unit of work;
// cross-user applies proceed fully in parallel.
type Engine struct {
	uow          persistence.UnitOfWork
	validator    *Validator
	idempotency  *IdempotencyHandler
	notifier     coreport.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEngine creates a transaction engine
func NewEngine(
	uow persistence.UnitOfWork,
	notifier coreport.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		validator:    NewValidator(logger),
		idempotency:  NewIdempotencyHandler(uow.GetTransactionRepository(context.Background())),
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ApplyTransaction applies a coin-changing action.
//
// Steps:
//  1. Validate the request.
//  2. Fast-path idempotency check, so retried one-shot actions return the
//     original row without taking locks.
//  3. Inside one store transaction: lock the user row, enforce non-negative
//     balance, append the receipted ledger row, update the cached balance.
//  4. Fire the notification; its failure never affects the outcome.
//
// A concurrent duplicate that races past the fast path is caught by the
// unique dedup index and resolved to the existing row.
func (e *Engine) ApplyTransaction(ctx context.Context, req portuse.ApplyRequest) (*portuse.ApplyResult, error) {
	if err := e.validator.ValidateApplyRequest(req); err != nil {
		return nil, err
	}

	prior, found, err := e.idempotency.CheckIdempotency(ctx, req.UserID, req.Reason, req.ReferenceID)
	if err != nil {
		return nil, err
	}
	if found {
		return e.duplicateResult(ctx, prior)
	}

	result, err := e.applyOnce(ctx, req)
	if err != nil {
		if errors.Is(err, errs.ErrConstraintViolation) {
			// Lost the race against a concurrent apply of the same action.
			return e.resolveRacedDuplicate(ctx, req)
		}
		return nil, err
	}

	e.notify(ctx, result.Transaction)

	return result, nil
}

// applyOnce runs the atomic insert-plus-balance-update
func (e *Engine) applyOnce(ctx context.Context, req portuse.ApplyRequest) (*portuse.ApplyResult, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin store transaction: %w", err)
	}

	userRepo := e.uow.GetUserRepository(txCtx)
	txnRepo := e.uow.GetTransactionRepository(txCtx)

	user, err := userRepo.GetByIDForUpdate(txCtx, req.UserID)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	txn, err := entity.NewTransaction(
		req.UserID, req.Amount, req.Type, req.Reason, req.ReferenceID, req.Metadata, e.timeProvider,
	)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if err := user.ApplyAmount(req.Amount, e.timeProvider); err != nil {
		e.rollback(txCtx)
		if errors.Is(err, errs.ErrInsufficientBalance) {
			e.logger.Warn("Transaction rejected: insufficient balance", map[string]any{
				"user_id":         req.UserID,
				"amount":          req.Amount,
				"current_balance": user.Coins(),
				"reason":          req.Reason,
			})
			return nil, errs.NewInsufficientBalanceError(req.UserID, req.Amount, user.Coins())
		}
		return nil, errs.NewLedgerError(req.UserID, req.Amount, req.Reason, req.ReferenceID, err)
	}

	if err := txnRepo.Create(txCtx, txn); err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if err := userRepo.UpdateBalance(txCtx, user); err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit store transaction: %w", err)
	}

	e.logger.Info("Transaction applied", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        req.UserID,
		"amount":         req.Amount,
		"type":           string(req.Type),
		"reason":         req.Reason,
		"reference_id":   req.ReferenceID,
		"new_balance":    user.Coins(),
		"receipt_hash":   txn.ReceiptHash,
	})

	return &portuse.ApplyResult{
		Transaction: txn,
		NewBalance:  user.Coins(),
	}, nil
}

// duplicateResult builds the idempotent no-op response around a prior row
func (e *Engine) duplicateResult(ctx context.Context, prior *entity.Transaction) (*portuse.ApplyResult, error) {
	user, err := e.uow.GetUserRepository(ctx).GetByID(ctx, prior.UserID)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Duplicate apply suppressed", map[string]any{
		"transaction_id": prior.ID,
		"user_id":        prior.UserID,
		"reason":         prior.Reason,
		"reference_id":   prior.ReferenceID,
	})

	return &portuse.ApplyResult{
		Transaction: prior,
		NewBalance:  user.Coins(),
		Duplicate:   true,
	}, nil
}

// resolveRacedDuplicate fetches the row created by the concurrent winner
func (e *Engine) resolveRacedDuplicate(ctx context.Context, req portuse.ApplyRequest) (*portuse.ApplyResult, error) {
	prior, found, err := e.idempotency.CheckIdempotency(ctx, req.UserID, req.Reason, req.ReferenceID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: dedup conflict but no prior transaction found", errs.ErrInternalServer)
	}
	return e.duplicateResult(ctx, prior)
}

// GetTransaction fetches a ledger row by ID
func (e *Engine) GetTransaction(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return e.uow.GetTransactionRepository(ctx).GetByID(ctx, id)
}

// Reconcile resets the user's cached balance to the ledger-derived value,
// recording the correction as a receipted reconciliation transaction. The
// whole recompute-append-reset sequence holds the user's row lock, so no
// concurrent apply can widen the drift mid-correction. Returns nil when the
// balance already matches the ledger.
//
// Reconciliation rows record cache resets, not coin movement, which is why
// SumAmountsByUser excludes them: counting them would double-count the drift
// they remove and re-flag the user on every subsequent scan.
func (e *Engine) Reconcile(ctx context.Context, userID uint64, scanID string) (*entity.Transaction, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin store transaction: %w", err)
	}

	userRepo := e.uow.GetUserRepository(txCtx)
	txnRepo := e.uow.GetTransactionRepository(txCtx)

	user, err := userRepo.GetByIDForUpdate(txCtx, userID)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	calculated, _, err := txnRepo.SumAmountsByUser(txCtx, userID)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	drift := user.Coins() - calculated
	if drift == 0 {
		e.rollback(txCtx)
		return nil, nil
	}

	txn, err := entity.NewTransaction(
		userID,
		-drift,
		entity.TypeAdminAdjustment,
		entity.ReasonReconciliation,
		scanID,
		map[string]string{
			"stored_balance":     fmt.Sprintf("%d", user.Coins()),
			"calculated_balance": fmt.Sprintf("%d", calculated),
		},
		e.timeProvider,
	)
	if err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if err := txnRepo.Create(txCtx, txn); err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	user.SetCoins(calculated)
	if err := userRepo.UpdateBalance(txCtx, user); err != nil {
		e.rollback(txCtx)
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit store transaction: %w", err)
	}

	e.logger.Warn("Drifted balance reconciled", map[string]any{
		"user_id":            userID,
		"scan_id":            scanID,
		"drift":              drift,
		"corrected_balance":  calculated,
		"reconciliation_tx":  txn.ID,
		"reconciliation_rcp": txn.ReceiptHash,
	})

	return txn, nil
}

// notify enqueues the fire-and-forget transaction notification
func (e *Engine) notify(ctx context.Context, txn *entity.Transaction) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.NotifyTransaction(ctx, txn.UserID, txn.Amount, txn.Reason); err != nil {
		e.logger.Warn("Transaction notification failed", map[string]any{
			"user_id":        txn.UserID,
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
	}
}

// rollback rolls back a store transaction, logging any secondary failure
func (e *Engine) rollback(txCtx context.Context) {
	if err := e.uow.Rollback(txCtx); err != nil {
		e.logger.Error("Failed to rollback store transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
