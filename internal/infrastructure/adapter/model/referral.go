package model

import (
	"time"
)

// Referral represents the database model for referral relationships.
// A referred user can appear in at most one row, and the award flags
// are flipped with conditional updates so each bonus pays out once.
type Referral struct {
	ID                     uint64    `gorm:"primaryKey;autoIncrement"`
	ReferrerID             uint64    `gorm:"not null;index"`
	ReferredUserID         uint64    `gorm:"uniqueIndex;not null"`
	CodeUsed               string    `gorm:"not null;size:16"`
	SignupBonusAwarded     bool      `gorm:"not null;default:false"`
	FirstVideoBonusAwarded bool      `gorm:"not null;default:false"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}
