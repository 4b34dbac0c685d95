package notify

import (
	"context"

	"github.com/votequest/coin-service/internal/domain/port/core"
)

// LogNotifier satisfies the Notifier port by logging the notification.
// Actual delivery belongs to the notification service; the ledger only
// needs a fire-and-forget hook.
type LogNotifier struct {
	logger core.Logger
}

// NewLogNotifier creates a notifier that logs instead of delivering
func NewLogNotifier(logger core.Logger) core.Notifier {
	return &LogNotifier{logger: logger}
}

// NotifyTransaction implements core.Notifier
func (n *LogNotifier) NotifyTransaction(_ context.Context, userID uint64, amount int64, reason string) error {
	n.logger.Debug("Transaction notification", map[string]any{
		"user_id": userID,
		"amount":  amount,
		"reason":  reason,
	})
	return nil
}
