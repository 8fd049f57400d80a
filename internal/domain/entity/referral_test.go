package entity

import (
	"testing"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferral(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid referral", func(t *testing.T) {
		rel, err := NewReferral(1, 2, "ABC123", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), rel.ReferrerID)
		assert.Equal(t, uint64(2), rel.ReferredUserID)
		assert.Equal(t, "ABC123", rel.CodeUsed)
		assert.False(t, rel.SignupBonusAwarded)
		assert.False(t, rel.FirstVideoBonusAwarded)
	})

	t.Run("Zero IDs are rejected", func(t *testing.T) {
		rel, err := NewReferral(0, 2, "ABC123", mockTime)
		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, rel)

		rel, err = NewReferral(1, 0, "ABC123", mockTime)
		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, rel)
	})

	t.Run("Self-referral is rejected", func(t *testing.T) {
		rel, err := NewReferral(7, 7, "ABC123", mockTime)

		assert.Equal(t, errs.ErrInvalidArgument, err)
		assert.Nil(t, rel)
	})
}
