package entity

import (
	"fmt"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
)

// TransactionType classifies a ledger entry by how the credits moved
type TransactionType string

// SourceType tags the business event a ledger entry stems from
type SourceType string

// Transaction types
const (
	TypeEarned    TransactionType = "earned"
	TypeSpent     TransactionType = "spent"
	TypePurchased TransactionType = "purchased"
	TypeBonus     TransactionType = "bonus"
)

// Source types
const (
	SourceSignup             SourceType = "signup"
	SourceCheckin            SourceType = "checkin"
	SourceReferral           SourceType = "referral"
	SourceReferralSignup     SourceType = "referral_signup"
	SourceReferralFirstVideo SourceType = "referral_first_video"
	SourcePurchase           SourceType = "purchase"
	SourceVideoGeneration    SourceType = "video_generation"
	SourceAdminAward         SourceType = "admin_award"
)

// CreditTransaction is one append-only ledger entry. A user's balance must
// always equal the running sum of their entries' signed amounts.
type CreditTransaction struct {
	ID            uint64          // Unique identifier for the ledger entry
	UserID        uint64          // ID of the user this entry belongs to
	Amount        int64           // Signed credit delta (negative for spends)
	Type          TransactionType // How the credits moved
	Source        SourceType      // Business event that produced the entry
	RelatedID     string          // Job or payment the entry stems from, empty if none
	ResultBalance int64           // Balance right after this entry was applied
	CreatedAt     time.Time       // When the entry was recorded
}

// NewCreditTransaction creates a new ledger entry with basic validation.
// amount carries the sign: positive for grants, negative for spends.
func NewCreditTransaction(
	userID uint64,
	amount int64,
	source SourceType,
	relatedID string,
	timeProvider coreport.TimeProvider,
) (*CreditTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if !IsValidSource(string(source)) {
		return nil, fmt.Errorf("%w: unknown source %s", errs.ErrInvalidArgument, source)
	}

	return &CreditTransaction{
		UserID:    userID,
		Amount:    amount,
		Type:      typeForSource(source, amount),
		Source:    source,
		RelatedID: relatedID,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increased the user's balance
func (t *CreditTransaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if this entry decreased the user's balance
func (t *CreditTransaction) IsDebit() bool {
	return t.Amount < 0
}

// typeForSource derives the transaction type from the source and sign
func typeForSource(source SourceType, amount int64) TransactionType {
	switch {
	case amount < 0:
		return TypeSpent
	case source == SourcePurchase:
		return TypePurchased
	case source == SourceReferral,
		source == SourceReferralSignup,
		source == SourceReferralFirstVideo,
		source == SourceCheckin:
		return TypeBonus
	default:
		return TypeEarned
	}
}

// IsValidSource validates if the source tag is one of the allowed values
func IsValidSource(source string) bool {
	switch SourceType(source) {
	case SourceSignup, SourceCheckin, SourceReferral, SourceReferralSignup,
		SourceReferralFirstVideo, SourcePurchase, SourceVideoGeneration,
		SourceAdminAward:
		return true
	default:
		return false
	}
}
