package entity

import (
	"testing"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid payment", func(t *testing.T) {
		p, err := NewPayment(1, "cs_test_abc", "creator", 999, 400, 50, mockTime)

		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, p.Status)
		assert.Equal(t, int64(450), p.TotalCredits())
		assert.False(t, p.IsSettled())
		assert.Equal(t, fixedTime, p.CreatedAt)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		p, err := NewPayment(0, "cs_test_abc", "creator", 999, 400, 50, mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, p)
	})

	t.Run("Missing provider payment ID", func(t *testing.T) {
		p, err := NewPayment(1, "  ", "creator", 999, 400, 50, mockTime)

		assert.Equal(t, errs.ErrInvalidArgument, err)
		assert.Nil(t, p)
	})

	t.Run("Non-positive credits", func(t *testing.T) {
		p, err := NewPayment(1, "cs_test_abc", "creator", 999, 0, 50, mockTime)

		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, p)
	})

	t.Run("Negative bonus credits", func(t *testing.T) {
		p, err := NewPayment(1, "cs_test_abc", "creator", 999, 400, -1, mockTime)

		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, p)
	})
}

func TestPaymentSettlement(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	p, err := NewPayment(1, "cs_test_abc", "creator", 999, 400, 50, mockTime)
	require.NoError(t, err)

	for _, status := range []PaymentStatus{PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCanceled} {
		p.Status = status
		assert.True(t, p.IsSettled(), string(status))
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"pending", "succeeded", "failed", "canceled"} {
		assert.True(t, IsValidPaymentStatus(s), s)
	}
	assert.False(t, IsValidPaymentStatus("refunded"))
	assert.False(t, IsValidPaymentStatus(""))
}
