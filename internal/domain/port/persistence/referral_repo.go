package persistence

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
)

// ReferralRepository stores referrer/referred relationships and their
// one-shot bonus flags
type ReferralRepository interface {
	// Create saves a new referral relationship
	//
	// Possible errors:
	// - ErrConstraintViolation: If the pair already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, referral *entity.Referral) error

	// GetByReferredUser retrieves the relationship a user was referred through
	//
	// Possible errors:
	// - ErrReferralNotFound: If the user was not referred
	// - ErrDatabaseConnection: If database connection fails
	GetByReferredUser(ctx context.Context, referredUserID uint64) (*entity.Referral, error)

	// MarkSignupBonusAwarded flips signup_bonus_awarded from false to true
	// with a conditional write. Returns true only for the caller that won
	// the flip; concurrent or repeated calls get false with no error.
	//
	// Possible errors:
	// - ErrReferralNotFound: If the pair does not exist
	// - ErrDatabaseConnection: If database connection fails
	MarkSignupBonusAwarded(ctx context.Context, referrerID, referredUserID uint64) (bool, error)

	// MarkFirstVideoBonusAwarded flips first_video_bonus_awarded from false
	// to true with a conditional write, same contract as
	// MarkSignupBonusAwarded.
	//
	// Possible errors:
	// - ErrReferralNotFound: If the pair does not exist
	// - ErrDatabaseConnection: If database connection fails
	MarkFirstVideoBonusAwarded(ctx context.Context, referrerID, referredUserID uint64) (bool, error)
}
