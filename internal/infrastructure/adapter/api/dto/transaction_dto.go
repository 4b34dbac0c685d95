package dto

import (
	"time"

	"github.com/votequest/coin-service/internal/domain/entity"
)

// ApplyTransactionRequest is the body of POST /user/:userId/transaction
type ApplyTransactionRequest struct {
	Amount      int64             `json:"amount" binding:"required"`
	Type        string            `json:"type" binding:"required"`
	Reason      string            `json:"reason" binding:"required"`
	ReferenceID string            `json:"referenceId"`
	Metadata    map[string]string `json:"metadata"`
}

// TransactionBody is the wire form of a ledger row
type TransactionBody struct {
	ID          uint64            `json:"id"`
	UserID      uint64            `json:"userId"`
	Amount      int64             `json:"amount"`
	Type        string            `json:"type"`
	Reason      string            `json:"reason"`
	ReferenceID string            `json:"referenceId,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	ReceiptHash string            `json:"receiptHash"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ApplyTransactionResponse is the success body for an apply
type ApplyTransactionResponse struct {
	Transaction TransactionBody `json:"transaction"`
	NewBalance  int64           `json:"newBalance"`
	Duplicate   bool            `json:"duplicate"`
}

// VerifyReceiptResponse is the body of GET /transaction/:transactionId/verify
type VerifyReceiptResponse struct {
	TransactionID uint64 `json:"transactionId"`
	Valid         bool   `json:"valid"`
	StoredHash    string `json:"storedHash"`
	ExpectedHash  string `json:"expectedHash"`
}

// ToTransactionBody converts a ledger entity to its wire form
func ToTransactionBody(t *entity.Transaction) TransactionBody {
	return TransactionBody{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Reason:      t.Reason,
		ReferenceID: t.ReferenceID,
		Metadata:    t.Metadata,
		ReceiptHash: t.ReceiptHash,
		CreatedAt:   t.CreatedAt,
	}
}
