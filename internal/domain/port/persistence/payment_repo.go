package persistence

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
)

// PaymentRepository stores credit top-up payments
type PaymentRepository interface {
	// Create saves a new pending payment
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If the provider payment ID is already recorded
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, payment *entity.Payment) error

	// GetByProviderPaymentID retrieves a payment by the provider's ID
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no payment with the ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (*entity.Payment, error)

	// UpdateStatus moves a payment to the given status. The write is
	// conditional on the payment still being pending; the returned bool
	// says whether this call performed the move, so webhook replays see
	// false instead of double-applying.
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no payment with the provider ID exists
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatus(ctx context.Context, providerPaymentID string, status entity.PaymentStatus) (bool, error)
}

// CreditPackageRepository serves the purchasable package catalogue
type CreditPackageRepository interface {
	// GetByID retrieves an active package by its identifier
	//
	// Possible errors:
	// - ErrNotFound: If no active package with the ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.CreditPackage, error)

	// GetAll returns all active packages
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	GetAll(ctx context.Context) ([]entity.CreditPackage, error)
}
