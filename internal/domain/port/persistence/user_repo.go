package persistence

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data.
// The balance-mutating methods are the only way credits may change; every
// one of them is an atomic conditional write at the datastore level.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByReferralCode resolves a referral code to its owner
	//
	// Possible errors:
	// - ErrUserNotFound: If no user owns the code
	// - ErrDatabaseConnection: If database connection fails
	GetByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID or referral code already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// AdjustBalance changes the user's credit balance atomically.
	// delta is signed; a negative delta that would drive the balance below
	// zero is rejected inside the same database transaction that holds the
	// row lock, so concurrent spends serialize through the datastore.
	// Returns the updated user on success.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - InsufficientCreditsError: If the debit exceeds the balance
	// - ErrConflict: If the row is locked by another operation
	// - ErrDatabaseConnection: If database connection fails
	AdjustBalance(ctx context.Context, userID uint64, delta int64) (*entity.User, error)

	// ApplyCheckIn grants the check-in bonus and stamps last_checkin_at in
	// one atomic unit, guarded by the 24h eligibility window. Returns the
	// updated user on success.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - CheckInNotAvailableError: If the window has not elapsed
	// - ErrDatabaseConnection: If database connection fails
	ApplyCheckIn(ctx context.Context, userID uint64, bonus int64) (*entity.User, error)

	// MarkFirstVideoGenerated flips is_first_video_generated from false to
	// true with a conditional write. Returns true only for the caller that
	// won the flip; concurrent or repeated calls get false with no error.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	MarkFirstVideoGenerated(ctx context.Context, userID uint64) (bool, error)
}
