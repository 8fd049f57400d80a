package payment

import (
	"context"
	"fmt"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	"github.com/sketchmotion/credit-engine/internal/domain/port/billing"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/port/persistence"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
)

// EventType classifies an incoming payment provider event
type EventType string

// Payment event types
const (
	EventSucceeded EventType = "succeeded"
	EventFailed    EventType = "failed"
	EventCanceled  EventType = "canceled"
)

// Event is the reconciler's view of a payment provider notification.
// The metadata fields mirror what the provider echoes back from checkout.
type Event struct {
	Type              EventType
	ProviderPaymentID string
	UserID            uint64
	PackageID         string
	Credits           int64
	BonusCredits      int64
	AmountCents       int64
}

// Service reconciles payment provider events into the credit ledger and
// creates checkout sessions for the package catalogue. A succeeded event
// turns into exactly one ledger grant, keyed by the provider payment ID;
// replays are no-ops. Failure and cancellation only move the payment
// status and never touch the balance.
type Service struct {
	ledger       *ledger.Service
	paymentRepo  persistence.PaymentRepository
	packageRepo  persistence.CreditPackageRepository
	checkout     billing.CheckoutProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new payment service
func NewService(
	ledgerService *ledger.Service,
	paymentRepo persistence.PaymentRepository,
	packageRepo persistence.CreditPackageRepository,
	checkout billing.CheckoutProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		ledger:       ledgerService,
		paymentRepo:  paymentRepo,
		packageRepo:  packageRepo,
		checkout:     checkout,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateCheckout opens a hosted checkout session for a credit package and
// records the matching pending payment
func (s *Service) CreateCheckout(ctx context.Context, userID uint64, packageID string) (*billing.CheckoutSession, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	session, err := s.checkout.CreateSession(ctx, userID, *pkg)
	if err != nil {
		return nil, err
	}

	record, err := entity.NewPayment(userID, session.ProviderPaymentID, pkg.ID, pkg.PriceCents, pkg.Credits, pkg.BonusCredits, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Checkout session created", map[string]any{
		"user_id":    userID,
		"package_id": pkg.ID,
		"payment_id": session.ProviderPaymentID,
	})
	return session, nil
}

// ListPackages returns the purchasable package catalogue
func (s *Service) ListPackages(ctx context.Context) ([]entity.CreditPackage, error) {
	return s.packageRepo.GetAll(ctx)
}

// HandleEvent applies one provider notification. Errors must bubble up to
// the webhook transport unacknowledged so the provider redelivers; the
// payment-ID keying makes those redeliveries safe.
func (s *Service) HandleEvent(ctx context.Context, event Event) error {
	if event.ProviderPaymentID == "" {
		return fmt.Errorf("%w: event without provider payment ID", errs.ErrInvalidArgument)
	}

	switch event.Type {
	case EventSucceeded:
		return s.handleSucceeded(ctx, event)
	case EventFailed:
		return s.settleWithoutGrant(ctx, event.ProviderPaymentID, entity.PaymentStatusFailed)
	case EventCanceled:
		return s.settleWithoutGrant(ctx, event.ProviderPaymentID, entity.PaymentStatusCanceled)
	default:
		s.logger.Debug("Ignoring unhandled payment event type", map[string]any{
			"type":       string(event.Type),
			"payment_id": event.ProviderPaymentID,
		})
		return nil
	}
}

// handleSucceeded applies the grant for a successful payment exactly once
func (s *Service) handleSucceeded(ctx context.Context, event Event) error {
	record, err := s.paymentRepo.GetByProviderPaymentID(ctx, event.ProviderPaymentID)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			return err
		}
		// Checkout record never landed (e.g. the webhook beat the session
		// write); reconstruct the payment from the event metadata.
		record, err = s.paymentFromEvent(ctx, event)
		if err != nil {
			return err
		}
	}

	_, applied, err := s.ledger.GrantPurchase(ctx, record.ProviderPaymentID, record.UserID, record.Credits, record.BonusCredits)
	if err != nil {
		return err
	}
	if !applied {
		s.logger.Info("Payment event replay ignored", map[string]any{
			"payment_id": record.ProviderPaymentID,
			"user_id":    record.UserID,
		})
	}
	return nil
}

// paymentFromEvent persists a payment record reconstructed from webhook metadata
func (s *Service) paymentFromEvent(ctx context.Context, event Event) (*entity.Payment, error) {
	if event.UserID == 0 || event.Credits <= 0 {
		return nil, fmt.Errorf("%w: payment %s has no usable metadata", errs.ErrPaymentNotFound, event.ProviderPaymentID)
	}

	record, err := entity.NewPayment(event.UserID, event.ProviderPaymentID, event.PackageID, event.AmountCents, event.Credits, event.BonusCredits, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil && !errs.IsDuplicateTransactionError(err) {
		return nil, err
	}

	s.logger.Warn("Payment record reconstructed from webhook metadata", map[string]any{
		"payment_id": event.ProviderPaymentID,
		"user_id":    event.UserID,
	})
	return record, nil
}

// settleWithoutGrant moves the payment to a non-success terminal status.
// The balance is never touched on these paths.
func (s *Service) settleWithoutGrant(ctx context.Context, providerPaymentID string, status entity.PaymentStatus) error {
	moved, err := s.paymentRepo.UpdateStatus(ctx, providerPaymentID, status)
	if err != nil {
		if errs.IsNotFoundError(err) {
			// Nothing to settle; acknowledge so the provider stops retrying.
			s.logger.Warn("Settlement event for unknown payment", map[string]any{
				"payment_id": providerPaymentID,
				"status":     string(status),
			})
			return nil
		}
		return err
	}
	if moved {
		s.logger.Info("Payment settled without grant", map[string]any{
			"payment_id": providerPaymentID,
			"status":     string(status),
		})
	}
	return nil
}
