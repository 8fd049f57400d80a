package entity

import (
	"strings"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/google/uuid"
)

// CheckInInterval is the rolling window a user must wait between daily check-ins
const CheckInInterval = 24 * time.Hour

// User represents a user entity with a credit balance
type User struct {
	ID                    uint64     // Unique identifier for the user
	credits               int64      // Credit balance, only mutated through ledger primitives (private)
	ReferralCode          string     // Unique code handed out for referrals, generated at creation
	ReferredBy            string     // Referral code of the user who referred this one, empty if none
	IsFirstVideoGenerated bool       // Flips false->true on the first completed generation, never reverses
	LastCheckinAt         *time.Time // When the user last claimed the daily check-in bonus
	CreatedAt             time.Time  // When the user was created
	UpdatedAt             time.Time  // When the user was last updated
}

// NewUser creates a new user with a fresh referral code
func NewUser(id uint64, referredBy string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		credits:      0,
		ReferralCode: GenerateReferralCode(),
		ReferredBy:   strings.TrimSpace(referredBy),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GenerateReferralCode produces a short unique referral code
func GenerateReferralCode() string {
	// First UUID block is enough entropy for a per-user code; the column
	// carries a unique index as the real guarantee.
	return strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// Credits returns the current credit balance
func (u *User) Credits() int64 {
	return u.credits
}

// SetCredits updates the balance directly (for internal use, like repositories)
func (u *User) SetCredits(credits int64, timeProvider coreport.TimeProvider) {
	u.credits = credits
	u.UpdatedAt = timeProvider.Now()
}

// CanSpend checks if the user has enough credits for a deduction
func (u *User) CanSpend(amount int64) bool {
	return amount > 0 && u.credits >= amount
}

// ApplyCredit adds the amount to the balance
func (u *User) ApplyCredit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	u.credits += amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyDebit subtracts the amount from the balance if enough credits exist
func (u *User) ApplyDebit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if u.credits < amount {
		return errs.NewInsufficientCreditsError(u.ID, amount, u.credits)
	}
	u.credits -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// CanCheckIn reports whether the check-in window has elapsed at the given time
func (u *User) CanCheckIn(now time.Time) bool {
	if u.LastCheckinAt == nil {
		return true
	}
	return now.Sub(*u.LastCheckinAt) >= CheckInInterval
}

// NextCheckInAt returns the earliest time the next check-in is allowed
func (u *User) NextCheckInAt() time.Time {
	if u.LastCheckinAt == nil {
		return time.Time{}
	}
	return u.LastCheckinAt.Add(CheckInInterval)
}

// MarkCheckedIn stamps the check-in time
func (u *User) MarkCheckedIn(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.LastCheckinAt = &now
	u.UpdatedAt = now
}

// MarkFirstVideoGenerated flips the one-way first-video flag.
// Returns false if the flag was already set.
func (u *User) MarkFirstVideoGenerated(timeProvider coreport.TimeProvider) bool {
	if u.IsFirstVideoGenerated {
		return false
	}
	u.IsFirstVideoGenerated = true
	u.UpdatedAt = timeProvider.Now()
	return true
}
