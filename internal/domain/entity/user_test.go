package entity

import (
	"testing"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(1, "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, int64(0), user.Credits())
		assert.NotEmpty(t, user.ReferralCode)
		assert.Empty(t, user.ReferredBy)
		assert.False(t, user.IsFirstVideoGenerated)
		assert.Nil(t, user.LastCheckinAt)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Referred-by code is trimmed", func(t *testing.T) {
		user, err := NewUser(2, "  ABC123  ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ABC123", user.ReferredBy)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		user, err := NewUser(0, "", mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})

	t.Run("Referral codes are unique per user", func(t *testing.T) {
		a, err := NewUser(3, "", mockTime)
		require.NoError(t, err)
		b, err := NewUser(4, "", mockTime)
		require.NoError(t, err)

		assert.NotEqual(t, a.ReferralCode, b.ReferralCode)
	})
}

func TestUserApplyCreditAndDebit(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Credit increases balance", func(t *testing.T) {
		user, _ := NewUser(1, "", mockTime)

		require.NoError(t, user.ApplyCredit(30, mockTime))
		assert.Equal(t, int64(30), user.Credits())
	})

	t.Run("Debit decreases balance", func(t *testing.T) {
		user, _ := NewUser(1, "", mockTime)
		require.NoError(t, user.ApplyCredit(100, mockTime))

		require.NoError(t, user.ApplyDebit(60, mockTime))
		assert.Equal(t, int64(40), user.Credits())
	})

	t.Run("Debit past zero is rejected", func(t *testing.T) {
		user, _ := NewUser(1, "", mockTime)
		require.NoError(t, user.ApplyCredit(10, mockTime))

		err := user.ApplyDebit(11, mockTime)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, int64(10), user.Credits())
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		user, _ := NewUser(1, "", mockTime)

		assert.ErrorIs(t, user.ApplyCredit(0, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, user.ApplyCredit(-5, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, user.ApplyDebit(0, mockTime), errs.ErrInvalidAmount)
	})

	t.Run("CanSpend", func(t *testing.T) {
		user, _ := NewUser(1, "", mockTime)
		require.NoError(t, user.ApplyCredit(60, mockTime))

		assert.True(t, user.CanSpend(60))
		assert.False(t, user.CanSpend(61))
		assert.False(t, user.CanSpend(0))
	})
}

func TestUserCheckInWindow(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Never checked in", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(base).Maybe()
		user, _ := NewUser(1, "", mockTime)

		assert.True(t, user.CanCheckIn(base))
		assert.True(t, user.NextCheckInAt().IsZero())
	})

	t.Run("Within the window", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(base).Maybe()
		user, _ := NewUser(1, "", mockTime)
		user.MarkCheckedIn(mockTime)

		assert.False(t, user.CanCheckIn(base.Add(23*time.Hour+59*time.Minute)))
		assert.Equal(t, base.Add(CheckInInterval), user.NextCheckInAt())
	})

	t.Run("Window elapsed exactly", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(base).Maybe()
		user, _ := NewUser(1, "", mockTime)
		user.MarkCheckedIn(mockTime)

		assert.True(t, user.CanCheckIn(base.Add(CheckInInterval)))
	})

	t.Run("Rolling window moves with each check-in", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(base).Once()
		user, _ := NewUser(1, "", mockTime)

		later := base.Add(30 * time.Hour)
		mockTime.EXPECT().Now().Return(later).Once()
		user.MarkCheckedIn(mockTime)

		assert.Equal(t, later.Add(CheckInInterval), user.NextCheckInAt())
		assert.False(t, user.CanCheckIn(later.Add(time.Hour)))
	})
}

func TestUserMarkFirstVideoGenerated(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	user, _ := NewUser(1, "", mockTime)

	assert.True(t, user.MarkFirstVideoGenerated(mockTime))
	assert.True(t, user.IsFirstVideoGenerated)

	// The flag is one-way: a second flip reports false.
	assert.False(t, user.MarkFirstVideoGenerated(mockTime))
	assert.True(t, user.IsFirstVideoGenerated)
}
