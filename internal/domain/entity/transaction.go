package entity

import (
	"fmt"
	"time"

	errs "github.com/votequest/coin-service/internal/domain/error"
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
)

// TransactionType is the closed set of tags that drive sign and validation rules
type TransactionType string

// Transaction types
const (
	TypeEarn            TransactionType = "EARN"
	TypeSpend           TransactionType = "SPEND"
	TypeGift            TransactionType = "GIFT"
	TypeAdminAdjustment TransactionType = "ADMIN_ADJUSTMENT"
	TypeRefund          TransactionType = "REFUND"
)

// Well-known reason codes. The reason taxonomy is open: codes outside this set
// are accepted and logged as non-standard rather than rejected.
const (
	ReasonVoteCast        = "vote_cast"
	ReasonProposalCreated = "proposal_created"
	ReasonRoomCreated     = "room_created"
	ReasonDebateWon       = "debate_won"
	ReasonDailyLogin      = "daily_login"
	ReasonQuadraticVote   = "quadratic_room_vote"
	ReasonCoinPurchase    = "coin_purchase"
	ReasonReconciliation  = "balance_reconciliation"

	// Prefixed reason families for the medal store
	ReasonPrefixMedalPurchase = "MEDAL_PURCHASE:"
	ReasonPrefixMedalGift     = "MEDAL_GIFT:"
)

// Transaction is a single immutable row of the coin ledger
type Transaction struct {
	ID          uint64            // Ledger row identifier
	UserID      uint64            // Owning user
	Amount      int64             // Signed whole coins; positive = credit, negative = debit
	Type        TransactionType   // Closed type tag driving sign rules
	Reason      string            // Open reason code identifying the producing feature
	ReferenceID string            // Entity that triggered the transaction; dedup key component
	Metadata    map[string]string // Descriptive only, not load-bearing for integrity
	ReceiptHash string            // SHA-256 receipt over the defining fields
	CreatedAt   time.Time
	Verified    bool
}

// NewTransaction creates a ledger transaction, assigns its timestamp and
// computes its receipt hash. The returned transaction is ready to append.
func NewTransaction(
	userID uint64,
	amount int64,
	txType TransactionType,
	reason string,
	referenceID string,
	metadata map[string]string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if reason == "" {
		return nil, errs.ErrInvalidReason
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	if err := ValidateAmountSign(amount, txType); err != nil {
		return nil, err
	}

	createdAt := timeProvider.Now().UTC()

	t := &Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Reason:      reason,
		ReferenceID: referenceID,
		Metadata:    metadata,
		CreatedAt:   createdAt,
	}
	t.ReceiptHash = ComputeReceiptHash(t.ReceiptInput())
	return t, nil
}

// ReceiptInput returns the canonical tuple the receipt hash covers
func (t *Transaction) ReceiptInput() ReceiptInput {
	return ReceiptInput{
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        t.Type,
		Reason:      t.Reason,
		ReferenceID: t.ReferenceID,
		Timestamp:   t.CreatedAt,
	}
}

// IsCredit returns true if this transaction increases the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if this transaction decreases the user's balance
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// ValidateAmountSign enforces the sign/type agreement rules:
// amount > 0 requires a credit type (EARN, GIFT, REFUND or ADMIN_ADJUSTMENT),
// amount < 0 requires a debit type (SPEND or ADMIN_ADJUSTMENT).
// ADMIN_ADJUSTMENT is the only type allowed either sign.
func ValidateAmountSign(amount int64, txType TransactionType) error {
	if txType == TypeAdminAdjustment {
		return nil
	}
	if amount > 0 {
		switch txType {
		case TypeEarn, TypeGift, TypeRefund:
			return nil
		}
		return fmt.Errorf("%w: positive amount with type %s", errs.ErrAmountTypeMismatch, txType)
	}
	if txType != TypeSpend {
		return fmt.Errorf("%w: negative amount with type %s", errs.ErrAmountTypeMismatch, txType)
	}
	return nil
}

// IsValidTransactionType validates if the type tag is one of the closed set
func IsValidTransactionType(txType string) bool {
	switch TransactionType(txType) {
	case TypeEarn, TypeSpend, TypeGift, TypeAdminAdjustment, TypeRefund:
		return true
	}
	return false
}

// IsStandardReason reports whether the reason code belongs to the known
// taxonomy. Unknown codes are still applied; callers log them as non-standard.
func IsStandardReason(reason string) bool {
	switch reason {
	case ReasonVoteCast, ReasonProposalCreated, ReasonRoomCreated, ReasonDebateWon,
		ReasonDailyLogin, ReasonQuadraticVote, ReasonCoinPurchase, ReasonReconciliation:
		return true
	}
	return hasReasonPrefix(reason, ReasonPrefixMedalPurchase) || hasReasonPrefix(reason, ReasonPrefixMedalGift)
}

func hasReasonPrefix(reason, prefix string) bool {
	return len(reason) > len(prefix) && reason[:len(prefix)] == prefix
}
