package usecase

import (
	"context"

	"github.com/votequest/coin-service/internal/domain/entity"
)

// PurchaseResult is the outcome of buying a medal
type PurchaseResult struct {
	Medal       entity.Medal
	Transaction *entity.Transaction
	NewBalance  int64
}

// GiftResult is the outcome of gifting a medal. The sender's coin balance is
// untouched; only inventory moves on the sender side.
type GiftResult struct {
	Medal            entity.Medal
	GiftID           string
	RewardAmount     int64
	Transaction      *entity.Transaction // GIFT credit on the recipient
	RecipientBalance int64
}

// MedalUseCase defines the medal store and gifting flows
type MedalUseCase interface {
	// PurchaseMedal debits the medal cost from the user through the
	// transaction engine and grants one medal to their inventory
	PurchaseMedal(ctx context.Context, userID uint64, medalName string) (*PurchaseResult, error)

	// GiftMedal consumes one medal from the sender's inventory and credits
	// the recipient a fraction of the medal's cost as a GIFT transaction
	GiftMedal(ctx context.Context, senderID, recipientID uint64, medalName string) (*GiftResult, error)
}
