package model

import (
	"time"
)

// CreditTransaction represents the database model for ledger entries.
// The (source_type, related_id) pair carries a partial unique index for
// purchase rows so a replayed payment id can never book twice.
type CreditTransaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	Amount        int64     `gorm:"not null"`
	Type          string    `gorm:"not null;size:20"`
	SourceType    string    `gorm:"not null;size:50;index:idx_source_related"`
	RelatedID     string    `gorm:"size:255;index:idx_source_related"`
	ResultBalance int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for CreditTransaction
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
