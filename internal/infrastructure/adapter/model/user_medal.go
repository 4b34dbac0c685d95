package model

import (
	"time"
)

// UserMedal tracks how many of a medal a user owns
type UserMedal struct {
	UserID    uint64    `gorm:"primaryKey"`
	MedalName string    `gorm:"primaryKey;size:255"`
	Count     int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserMedal
func (UserMedal) TableName() string {
	return "user_medals"
}
