package entity

import (
	"testing"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreditTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid grant entry", func(t *testing.T) {
		entry, err := NewCreditTransaction(1, 30, SourceSignup, "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), entry.UserID)
		assert.Equal(t, int64(30), entry.Amount)
		assert.Equal(t, TypeEarned, entry.Type)
		assert.Equal(t, SourceSignup, entry.Source)
		assert.Equal(t, fixedTime, entry.CreatedAt)
		assert.True(t, entry.IsCredit())
		assert.False(t, entry.IsDebit())
	})

	t.Run("Valid spend entry", func(t *testing.T) {
		entry, err := NewCreditTransaction(1, -60, SourceVideoGeneration, "job-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, TypeSpent, entry.Type)
		assert.Equal(t, "job-1", entry.RelatedID)
		assert.True(t, entry.IsDebit())
	})

	t.Run("Zero user ID", func(t *testing.T) {
		entry, err := NewCreditTransaction(0, 10, SourceSignup, "", mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, entry)
	})

	t.Run("Zero amount", func(t *testing.T) {
		entry, err := NewCreditTransaction(1, 0, SourceSignup, "", mockTime)

		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, entry)
	})

	t.Run("Unknown source", func(t *testing.T) {
		entry, err := NewCreditTransaction(1, 10, SourceType("lottery"), "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Nil(t, entry)
	})
}

func TestTransactionTypeDerivation(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	testCases := []struct {
		name     string
		amount   int64
		source   SourceType
		expected TransactionType
	}{
		{"Signup grant is earned", 30, SourceSignup, TypeEarned},
		{"Admin award is earned", 100, SourceAdminAward, TypeEarned},
		{"Purchase is purchased", 400, SourcePurchase, TypePurchased},
		{"Check-in is bonus", 5, SourceCheckin, TypeBonus},
		{"Referral grant is bonus", 20, SourceReferral, TypeBonus},
		{"Referee grant is bonus", 10, SourceReferralSignup, TypeBonus},
		{"First-video grant is bonus", 50, SourceReferralFirstVideo, TypeBonus},
		{"Any negative amount is spent", -60, SourceVideoGeneration, TypeSpent},
		{"Negative admin adjustment is spent", -10, SourceAdminAward, TypeSpent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := NewCreditTransaction(1, tc.amount, tc.source, "", mockTime)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, entry.Type)
		})
	}
}

func TestIsValidSource(t *testing.T) {
	valid := []string{
		"signup", "checkin", "referral", "referral_signup",
		"referral_first_video", "purchase", "video_generation", "admin_award",
	}
	for _, s := range valid {
		assert.True(t, IsValidSource(s), s)
	}

	assert.False(t, IsValidSource(""))
	assert.False(t, IsValidSource("Signup"))
	assert.False(t, IsValidSource("gift"))
}
