package model

import (
	"time"
)

// Transaction represents a database row of the append-only coin ledger.
// Rows are never updated or deleted after insertion.
//
// The partial unique index on (user_id, reason, reference_id) is the storage
// side of the idempotency contract: one-shot actions carry a non-empty
// reference_id and can only ever insert once.
type Transaction struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement"`
	UserID      uint64            `gorm:"not null;index;uniqueIndex:idx_ledger_dedup,where:reference_id <> ''"`
	Amount      int64             `gorm:"not null"`
	Type        string            `gorm:"not null;size:32"`
	Reason      string            `gorm:"not null;size:255;uniqueIndex:idx_ledger_dedup,where:reference_id <> ''"`
	ReferenceID string            `gorm:"size:255;uniqueIndex:idx_ledger_dedup,where:reference_id <> ''"`
	Metadata    map[string]string `gorm:"serializer:json"`
	ReceiptHash string            `gorm:"not null;size:64;index"`
	CreatedAt   time.Time         `gorm:"not null"`
	Verified    bool              `gorm:"not null;default:false"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
