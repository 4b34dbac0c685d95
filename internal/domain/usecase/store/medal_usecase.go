package store

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/votequest/coin-service/internal/domain/entity"
	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/domain/port/persistence"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
)

// MedalService implements the medal store and gifting flows. Coin movement
// always goes through the transaction engine so it is receipted; only
// inventory counts are touched directly.
type MedalService struct {
	catalog   map[string]entity.Medal
	medalRepo persistence.MedalRepository
	ledger    portuse.LedgerUseCase
	logger    coreport.Logger
}

// NewMedalService creates a medal service over the given catalog. A nil or
// empty catalog falls back to the built-in one.
func NewMedalService(
	catalog []entity.Medal,
	medalRepo persistence.MedalRepository,
	ledger portuse.LedgerUseCase,
	logger coreport.Logger,
) *MedalService {
	if len(catalog) == 0 {
		catalog = entity.DefaultMedalCatalog()
	}
	byName := make(map[string]entity.Medal, len(catalog))
	for _, m := range catalog {
		byName[m.Name] = m
	}
	return &MedalService{
		catalog:   byName,
		medalRepo: medalRepo,
		ledger:    ledger,
		logger:    logger,
	}
}

// PurchaseMedal debits the medal cost through the engine, then grants the
// medal. If the grant fails after the debit committed, a compensating REFUND
// is appended; the ledger stays append-only either way.
func (s *MedalService) PurchaseMedal(ctx context.Context, userID uint64, medalName string) (*portuse.PurchaseResult, error) {
	medal, ok := s.catalog[medalName]
	if !ok {
		return nil, errs.ErrMedalNotFound
	}

	purchaseID := uuid.NewString()

	applied, err := s.ledger.ApplyTransaction(ctx, portuse.ApplyRequest{
		UserID:      userID,
		Amount:      -medal.Cost,
		Type:        entity.TypeSpend,
		Reason:      medal.PurchaseReason(),
		ReferenceID: purchaseID,
		Metadata:    map[string]string{"medal": medal.Name},
	})
	if err != nil {
		return nil, err
	}

	if err := s.medalRepo.Grant(ctx, userID, medal.Name); err != nil {
		s.logger.Error("Medal grant failed after debit, refunding", map[string]any{
			"user_id":     userID,
			"medal":       medal.Name,
			"purchase_id": purchaseID,
			"error":       err.Error(),
		})
		s.refundPurchase(ctx, userID, medal, purchaseID)
		return nil, err
	}

	return &portuse.PurchaseResult{
		Medal:       medal,
		Transaction: applied.Transaction,
		NewBalance:  applied.NewBalance,
	}, nil
}

// refundPurchase appends the compensating credit for a failed grant
func (s *MedalService) refundPurchase(ctx context.Context, userID uint64, medal entity.Medal, purchaseID string) {
	_, err := s.ledger.ApplyTransaction(ctx, portuse.ApplyRequest{
		UserID:      userID,
		Amount:      medal.Cost,
		Type:        entity.TypeRefund,
		Reason:      entity.ReasonPrefixMedalPurchase + medal.Name,
		ReferenceID: purchaseID + ":refund",
		Metadata:    map[string]string{"medal": medal.Name, "refund_of": purchaseID},
	})
	if err != nil {
		// The scanner will surface the orphaned debit if this also fails.
		s.logger.Error("Purchase refund failed", map[string]any{
			"user_id":     userID,
			"medal":       medal.Name,
			"purchase_id": purchaseID,
			"error":       err.Error(),
		})
	}
}

// GiftMedal consumes one medal from the sender's inventory and credits the
// recipient a GIFT transaction worth a fraction of the medal's cost. The
// sender's coin balance is untouched; only inventory moves on their side.
func (s *MedalService) GiftMedal(ctx context.Context, senderID, recipientID uint64, medalName string) (*portuse.GiftResult, error) {
	medal, ok := s.catalog[medalName]
	if !ok {
		return nil, errs.ErrMedalNotFound
	}
	if senderID == 0 || recipientID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if err := s.medalRepo.Consume(ctx, senderID, medal.Name); err != nil {
		return nil, err
	}

	giftID := uuid.NewString()
	reward := medal.GiftReward()

	result := &portuse.GiftResult{
		Medal:        medal,
		GiftID:       giftID,
		RewardAmount: reward,
	}

	if reward == 0 {
		// The sender's medal is still consumed; there is just nothing to credit.
		return result, nil
	}

	applied, err := s.ledger.ApplyTransaction(ctx, portuse.ApplyRequest{
		UserID:      recipientID,
		Amount:      reward,
		Type:        entity.TypeGift,
		Reason:      medal.GiftReason(),
		ReferenceID: giftID,
		Metadata: map[string]string{
			"medal":  medal.Name,
			"sender": strconv.FormatUint(senderID, 10),
		},
	})
	if err != nil {
		// Return the medal; the gift never happened.
		if grantErr := s.medalRepo.Grant(ctx, senderID, medal.Name); grantErr != nil {
			s.logger.Error("Failed to return medal after gift credit failure", map[string]any{
				"sender_id": senderID,
				"medal":     medal.Name,
				"gift_id":   giftID,
				"error":     grantErr.Error(),
			})
		}
		return nil, err
	}

	result.Transaction = applied.Transaction
	result.RecipientBalance = applied.NewBalance

	s.logger.Info("Medal gifted", map[string]any{
		"sender_id":    senderID,
		"recipient_id": recipientID,
		"medal":        medal.Name,
		"gift_id":      giftID,
		"reward":       reward,
	})

	return result, nil
}
