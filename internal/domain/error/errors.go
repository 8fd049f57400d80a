package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits  = 4001
	CodeInvalidArgument      = 4002
	CodeInvalidUserID        = 4003
	CodeDuplicateTransaction = 4004
	CodeConstraintViolation  = 4005
	CodeCheckInNotAvailable  = 4006
	CodeUnauthenticated      = 4010
	CodeForbidden            = 4030
	CodeUserNotFound         = 4040
	CodeJobNotFound          = 4041
	CodePaymentNotFound      = 4042
	CodeConflict             = 4090

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeProviderUnavailable = 5020
)

// Base error types
var (
	// ErrInsufficientCredits is returned when a user has too few credits for a spend
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when a credit amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidArgument is returned when request fields fail validation
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPrompt is returned when the generation prompt is empty or too long
	ErrInvalidPrompt = errors.New("invalid prompt")

	// ErrInvalidMood is returned when the mood is not one of the allowed values
	ErrInvalidMood = errors.New("invalid mood")

	// ErrCheckInNotAvailable is returned when the daily check-in window has not elapsed
	ErrCheckInNotAvailable = errors.New("check-in not available yet")

	// ErrDuplicateTransaction is returned when a ledger entry with the same
	// related ID already exists for an idempotent grant
	ErrDuplicateTransaction = errors.New("transaction already recorded")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrJobNotFound is returned when the requested generation job doesn't exist
	ErrJobNotFound = errors.New("generation job not found")

	// ErrPaymentNotFound is returned when the referenced payment doesn't exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrReferralNotFound is returned when no referral relationship exists for a pair
	ErrReferralNotFound = errors.New("referral not found")

	// ErrUnauthenticated is returned when no authenticated user is attached to the request
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned on resource ownership mismatches
	ErrForbidden = errors.New("forbidden")

	// ErrProviderUnavailable is returned after the generation provider client
	// has exhausted its retries
	ErrProviderUnavailable = errors.New("generation provider unavailable")

	// ErrInvalidProviderResponse is returned when the provider response lacks
	// the correlation ID required to track the job
	ErrInvalidProviderResponse = errors.New("invalid provider response")

	// ErrJobTerminal is returned when attempting to re-submit a job that
	// already reached a terminal status
	ErrJobTerminal = errors.New("generation job already terminal")

	// ErrConflict is returned when a conditional write lost a race and
	// retrying is pointless
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInvalidPrompt),
		errors.Is(err, ErrInvalidMood),
		errors.Is(err, ErrInvalidRequest):
		return CodeInvalidArgument
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrCheckInNotAvailable):
		return CodeCheckInNotAvailable
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrJobNotFound):
		return CodeJobNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrJobTerminal):
		return CodeConflict
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrProviderUnavailable),
		errors.Is(err, ErrInvalidProviderResponse):
		return CodeProviderUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError carries the required and available amounts so the
// API can tell the caller exactly how short they are
type InsufficientCreditsError struct {
	UserID    uint64
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %d: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID uint64, required, available int64) error {
	return &InsufficientCreditsError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// CheckInNotAvailableError reports when the user becomes eligible again
type CheckInNotAvailableError struct {
	UserID        uint64
	NextAvailable time.Time
}

// Error implements the error interface
func (e *CheckInNotAvailableError) Error() string {
	return fmt.Sprintf("check-in not available for user %d until %s",
		e.UserID, e.NextAvailable.Format(time.RFC3339))
}

// Is checks if the target error is an ErrCheckInNotAvailable
func (e *CheckInNotAvailableError) Is(target error) bool {
	return target == ErrCheckInNotAvailable
}

// NewCheckInNotAvailableError creates a new detailed check-in error
func NewCheckInNotAvailableError(userID uint64, nextAvailable time.Time) error {
	return &CheckInNotAvailableError{
		UserID:        userID,
		NextAvailable: nextAvailable,
	}
}

// ProviderError wraps the last failure from the external generation provider
// after the client has given up retrying
type ProviderError struct {
	Operation  string
	StatusCode int
	Attempts   int
	Err        error
}

// Error implements the error interface for ProviderError
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed after %d attempts (status %d): %v",
		e.Operation, e.Attempts, e.StatusCode, e.Err)
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrProviderUnavailable
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "provider_error",
		"operation":   e.Operation,
		"status_code": e.StatusCode,
		"attempts":    e.Attempts,
		"error":       e.Err.Error(),
		"error_code":  CodeProviderUnavailable,
	}
}

// NewProviderError creates a detailed provider error
func NewProviderError(operation string, statusCode, attempts int, err error) error {
	return &ProviderError{
		Operation:  operation,
		StatusCode: statusCode,
		Attempts:   attempts,
		Err:        err,
	}
}

// LedgerError represents an error raised while applying a ledger mutation
type LedgerError struct {
	UserID uint64
	Amount int64
	Source string
	Err    error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger operation failed for user %d (amount: %d, source: %s): %v",
		e.UserID, e.Amount, e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"source":     e.Source,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(userID uint64, amount int64, source string, err error) error {
	return &LedgerError{
		UserID: userID,
		Amount: amount,
		Source: source,
		Err:    err,
	}
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsCheckInNotAvailableError checks if the error is a check-in eligibility error
func IsCheckInNotAvailableError(err error) bool {
	return errors.Is(err, ErrCheckInNotAvailable)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrJobNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrReferralNotFound)
}

// IsProviderError checks if the error came from the generation provider client
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}

// IsForbiddenError checks if the error is an ownership mismatch
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsConflictError checks if the error represents a lost conditional-write race
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}
