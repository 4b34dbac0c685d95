package persistence

import (
	"context"
)

// UnitOfWork coordinates the ledger insert and the cached-balance update as a
// single atomic store transaction, preserving the conservation invariant at
// write time.
type UnitOfWork interface {
	// Begin starts a new store transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a ledger repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetMedalRepository returns a medal inventory repository bound to the current transaction
	GetMedalRepository(ctx context.Context) MedalRepository
}
