package model

import (
	"time"
)

// Payment represents the database model for credit purchases. The
// provider payment id is unique so webhook redelivery cannot create a
// second row for the same checkout.
type Payment struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	UserID            uint64    `gorm:"not null;index"`
	ProviderPaymentID string    `gorm:"uniqueIndex;not null;size:255"`
	PackageID         string    `gorm:"not null;size:50"`
	AmountCents       int64     `gorm:"not null"`
	Credits           int64     `gorm:"not null"`
	BonusCredits      int64     `gorm:"not null;default:0"`
	Status            string    `gorm:"not null;size:20;index"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
