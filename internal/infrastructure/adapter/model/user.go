package model

import (
	"time"
)

// User represents the database model for users. Coins is the cached balance;
// the ledger in the transactions table is the source of truth.
type User struct {
	ID               uint64    `gorm:"primaryKey"`
	Coins            int64     `gorm:"not null;default:0"`
	VotingPower      int64     `gorm:"not null;default:1"`
	Level            int       `gorm:"not null;default:1"`
	XP               int64     `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
	TransactionCount uint64    `gorm:"default:0"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
