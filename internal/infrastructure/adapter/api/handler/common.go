package handler

import (
	"errors"
	"net/http"
	"time"

	domainerr "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to the right HTTP status and error
// payload. Insufficient credits gets the 402 shape with the shortfall;
// everything else uses the standard code/message pair.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	var insufficientErr *domainerr.InsufficientCreditsError
	if errors.As(err, &insufficientErr) {
		c.JSON(http.StatusPaymentRequired, dto.InsufficientCreditsResponse{
			Code:      domainerr.ErrorCode(err),
			Message:   "Insufficient credits",
			Required:  insufficientErr.Required,
			Available: insufficientErr.Available,
		})
		return
	}

	var checkInErr *domainerr.CheckInNotAvailableError
	if errors.As(err, &checkInErr) {
		c.JSON(http.StatusConflict, dto.CheckInUnavailableResponse{
			Code:          domainerr.ErrorCode(err),
			Message:       "Check-in not available yet",
			NextAvailable: checkInErr.NextAvailable.UTC().Format(time.RFC3339),
		})
		return
	}

	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "User not found"
	case errors.Is(err, domainerr.ErrJobNotFound):
		statusCode = http.StatusNotFound
		message = "Job not found"
	case errors.Is(err, domainerr.ErrNotFound), errors.Is(err, domainerr.ErrPaymentNotFound):
		statusCode = http.StatusNotFound
		message = "Not found"
	case errors.Is(err, domainerr.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Forbidden"
	case errors.Is(err, domainerr.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		message = "Unauthorized"
	case errors.Is(err, domainerr.ErrInvalidPrompt),
		errors.Is(err, domainerr.ErrInvalidMood),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidArgument),
		errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidUserID):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrDuplicateTransaction), errors.Is(err, domainerr.ErrConflict):
		statusCode = http.StatusConflict
		message = "Conflict"
	case errors.Is(err, domainerr.ErrProviderUnavailable):
		statusCode = http.StatusBadGateway
		message = "Generation provider unavailable"
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// formatTime renders an optional timestamp as RFC3339, empty when nil
func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
