package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerr "github.com/sketchmotion/credit-engine/internal/domain/error"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder, *coremocks.MockLogger) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return c, recorder, mockLogger
}

func TestRespondError(t *testing.T) {
	t.Run("Insufficient credits carries the shortfall", func(t *testing.T) {
		c, recorder, logger := newErrorTestContext(t)

		respondError(c, logger, domainerr.NewInsufficientCreditsError(1, 60, 25))

		assert.Equal(t, http.StatusPaymentRequired, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, float64(domainerr.CodeInsufficientCredits), body["code"])
		assert.Equal(t, "Insufficient credits", body["message"])
		assert.Equal(t, float64(60), body["required"])
		assert.Equal(t, float64(25), body["available"])
	})

	t.Run("Check-in window conflict carries the next slot", func(t *testing.T) {
		c, recorder, logger := newErrorTestContext(t)

		next := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
		respondError(c, logger, domainerr.NewCheckInNotAvailableError(1, next))

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "2025-03-02T12:00:00Z", body["nextAvailable"])
	})

	t.Run("Status mapping for the common sentinels", func(t *testing.T) {
		tests := []struct {
			err    error
			status int
		}{
			{domainerr.ErrUserNotFound, http.StatusNotFound},
			{domainerr.ErrJobNotFound, http.StatusNotFound},
			{domainerr.ErrForbidden, http.StatusForbidden},
			{domainerr.ErrUnauthenticated, http.StatusUnauthorized},
			{domainerr.ErrInvalidMood, http.StatusBadRequest},
			{domainerr.ErrDuplicateTransaction, http.StatusConflict},
			{domainerr.ErrProviderUnavailable, http.StatusBadGateway},
			{fmt.Errorf("wrapped: %w", domainerr.ErrInvalidUserID), http.StatusBadRequest},
		}

		for _, tc := range tests {
			c, recorder, logger := newErrorTestContext(t)
			respondError(c, logger, tc.err)
			assert.Equal(t, tc.status, recorder.Code, "error: %v", tc.err)
		}
	})

	t.Run("Unknown errors fall back to internal server error", func(t *testing.T) {
		c, recorder, logger := newErrorTestContext(t)

		respondError(c, logger, fmt.Errorf("something unexpected"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
