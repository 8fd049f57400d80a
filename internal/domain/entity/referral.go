package entity

import (
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
)

// Referral is the relationship between a referrer and a referred user,
// created when the referred user signs up with a valid code. The two bonus
// flags are independent one-shots guarding the signup and first-video
// rewards.
type Referral struct {
	ID                     uint64    // Internal identifier
	ReferrerID             uint64    // User who owns the referral code
	ReferredUserID         uint64    // User who signed up with the code
	CodeUsed               string    // The referral code that linked the pair
	SignupBonusAwarded     bool      // Set once the signup bonuses were granted
	FirstVideoBonusAwarded bool      // Set once the first-video bonus was granted
	CreatedAt              time.Time // When the relationship was created
	UpdatedAt              time.Time // When the relationship was last updated
}

// NewReferral creates a referral relationship with both bonuses unawarded
func NewReferral(referrerID, referredUserID uint64, codeUsed string, timeProvider coreport.TimeProvider) (*Referral, error) {
	if referrerID == 0 || referredUserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if referrerID == referredUserID {
		return nil, errs.ErrInvalidArgument
	}

	now := timeProvider.Now()
	return &Referral{
		ReferrerID:     referrerID,
		ReferredUserID: referredUserID,
		CodeUsed:       codeUsed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
