package error

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientCredits", ErrInsufficientCredits, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidPrompt", ErrInvalidPrompt, 4002},
		{"InvalidMood", ErrInvalidMood, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"CheckInNotAvailable", ErrCheckInNotAvailable, 4006},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"Forbidden", ErrForbidden, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"JobNotFound", ErrJobNotFound, 4041},
		{"PaymentNotFound", ErrPaymentNotFound, 4042},
		{"Conflict", ErrConflict, 4090},
		{"ProviderUnavailable", ErrProviderUnavailable, 5020},
		{"InvalidProviderResponse", ErrInvalidProviderResponse, 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError(123, 60, 45)

	expected := "insufficient credits for user 123: required 60, available 45"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrInsufficientCredits) {
		t.Error("expected errors.Is to match ErrInsufficientCredits")
	}

	var detailed *InsufficientCreditsError
	if !errors.As(err, &detailed) {
		t.Fatal("expected errors.As to extract InsufficientCreditsError")
	}
	if detailed.Required != 60 || detailed.Available != 45 {
		t.Errorf("unexpected amounts: required %d, available %d", detailed.Required, detailed.Available)
	}
	if ErrorCode(err) != CodeInsufficientCredits {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeInsufficientCredits)
	}
}

func TestCheckInNotAvailableError(t *testing.T) {
	next := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	err := NewCheckInNotAvailableError(5, next)

	if !errors.Is(err, ErrCheckInNotAvailable) {
		t.Error("expected errors.Is to match ErrCheckInNotAvailable")
	}

	var detailed *CheckInNotAvailableError
	if !errors.As(err, &detailed) {
		t.Fatal("expected errors.As to extract CheckInNotAvailableError")
	}
	if !detailed.NextAvailable.Equal(next) {
		t.Errorf("NextAvailable = %v, want %v", detailed.NextAvailable, next)
	}
}

func TestProviderError(t *testing.T) {
	base := errors.New("connection refused")
	err := NewProviderError("start_generation", 503, 3, base)

	if !errors.Is(err, ErrProviderUnavailable) {
		t.Error("expected errors.Is to match ErrProviderUnavailable")
	}
	if !errors.Is(err, base) {
		t.Error("expected Unwrap to reach the underlying error")
	}
	if ErrorCode(err) != CodeProviderUnavailable {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeProviderUnavailable)
	}
}

func TestLedgerError(t *testing.T) {
	err := NewLedgerError(9, -60, "video_generation", ErrConflict)

	if !errors.Is(err, ErrConflict) {
		t.Error("expected Unwrap to reach ErrConflict")
	}

	var ledgerErr *LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatal("expected errors.As to extract LedgerError")
	}
	if ledgerErr.Amount != -60 {
		t.Errorf("Amount = %d, want -60", ledgerErr.Amount)
	}
}

func TestIsNotFoundError(t *testing.T) {
	for _, err := range []error{ErrNotFound, ErrUserNotFound, ErrJobNotFound, ErrPaymentNotFound, ErrReferralNotFound} {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
	}
	if IsNotFoundError(ErrConflict) {
		t.Error("IsNotFoundError(ErrConflict) = true, want false")
	}
	if !IsNotFoundError(fmt.Errorf("%w: user 4", ErrUserNotFound)) {
		t.Error("expected wrapped not-found to match")
	}
}
