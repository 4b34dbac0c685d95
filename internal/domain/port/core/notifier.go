package core

import "context"

// Notifier delivers fire-and-forget user notifications after a transaction
// commits. Delivery failure must never roll back or fail the transaction;
// implementations report errors for logging only.
type Notifier interface {
	// NotifyTransaction announces a balance change to the user
	NotifyTransaction(ctx context.Context, userID uint64, amount int64, reason string) error
}
