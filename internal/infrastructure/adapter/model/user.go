package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID                    uint64 `gorm:"primaryKey"`
	Credits               int64  `gorm:"not null;default:0"`
	ReferralCode          string `gorm:"uniqueIndex;not null;size:16"`
	ReferredBy            string `gorm:"size:16"`
	IsFirstVideoGenerated bool   `gorm:"not null;default:false"`
	LastCheckinAt         *time.Time
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
