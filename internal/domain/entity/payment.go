package entity

import (
	"strings"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
)

// PaymentStatus represents the state of a credit top-up payment
type PaymentStatus string

// Payment statuses
const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCanceled  PaymentStatus = "canceled"
)

// Payment represents one credit-package purchase. A succeeded payment
// triggers exactly one ledger grant, keyed by the provider payment ID.
type Payment struct {
	ID                uint64        // Internal identifier
	UserID            uint64        // Buyer
	ProviderPaymentID string        // Payment provider's ID, unique, the idempotency key
	PackageID         string        // Credit package purchased
	AmountCents       int64         // Charge amount in cents
	Credits           int64         // Base credits granted on success
	BonusCredits      int64         // Extra credits bundled with the package
	Status            PaymentStatus // Current payment state
	CreatedAt         time.Time     // When the payment was initiated
	UpdatedAt         time.Time     // When the payment was last updated
}

// NewPayment creates a pending payment record
func NewPayment(
	userID uint64,
	providerPaymentID, packageID string,
	amountCents, credits, bonusCredits int64,
	timeProvider coreport.TimeProvider,
) (*Payment, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(providerPaymentID) == "" {
		return nil, errs.ErrInvalidArgument
	}
	if credits <= 0 || bonusCredits < 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Payment{
		UserID:            userID,
		ProviderPaymentID: providerPaymentID,
		PackageID:         packageID,
		AmountCents:       amountCents,
		Credits:           credits,
		BonusCredits:      bonusCredits,
		Status:            PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// TotalCredits returns the credits the user receives when the payment succeeds
func (p *Payment) TotalCredits() int64 {
	return p.Credits + p.BonusCredits
}

// IsSettled reports whether the payment reached a final state
func (p *Payment) IsSettled() bool {
	return p.Status != PaymentStatusPending
}

// IsValidPaymentStatus validates a payment status value
func IsValidPaymentStatus(status string) bool {
	switch PaymentStatus(status) {
	case PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCanceled:
		return true
	default:
		return false
	}
}
