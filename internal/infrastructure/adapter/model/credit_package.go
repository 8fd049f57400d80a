package model

import (
	"time"
)

// CreditPackage represents the database model for purchasable credit packages
type CreditPackage struct {
	ID           string    `gorm:"primaryKey;size:50"`
	Name         string    `gorm:"not null;size:100"`
	PriceCents   int64     `gorm:"not null"`
	Credits      int64     `gorm:"not null"`
	BonusCredits int64     `gorm:"not null;default:0"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for CreditPackage
func (CreditPackage) TableName() string {
	return "credit_packages"
}
