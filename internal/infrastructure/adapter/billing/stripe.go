package billing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	billingport "github.com/sketchmotion/credit-engine/internal/domain/port/billing"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/payment"
)

// Config holds the Stripe integration settings
type Config struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// StripeProvider implements the billing.CheckoutProvider port using
// Stripe Checkout. Package details ride along as session metadata so the
// webhook can reconstruct an unknown payment.
type StripeProvider struct {
	config Config
	logger coreport.Logger
}

// NewStripeProvider creates a new StripeProvider instance
func NewStripeProvider(config Config, logger coreport.Logger) *StripeProvider {
	stripe.Key = config.SecretKey
	return &StripeProvider{
		config: config,
		logger: logger,
	}
}

// CreateSession opens a Stripe Checkout session for the given credit package
func (p *StripeProvider) CreateSession(ctx context.Context, userID uint64, pkg entity.CreditPackage) (*billingport.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(pkg.PriceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(pkg.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.config.SuccessURL),
		CancelURL:  stripe.String(p.config.CancelURL),
	}

	params.AddMetadata("user_id", strconv.FormatUint(userID, 10))
	params.AddMetadata("package_id", pkg.ID)
	params.AddMetadata("credits", strconv.FormatInt(pkg.Credits, 10))
	params.AddMetadata("bonus_credits", strconv.FormatInt(pkg.BonusCredits, 10))

	sess, err := session.New(params)
	if err != nil {
		p.logger.Error("Failed to create Stripe checkout session", map[string]any{
			"user_id":    userID,
			"package_id": pkg.ID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrProviderUnavailable, err.Error())
	}

	p.logger.Info("Stripe checkout session created", map[string]any{
		"user_id":    userID,
		"package_id": pkg.ID,
		"session_id": sess.ID,
	})

	return &billingport.CheckoutSession{
		ProviderPaymentID: sess.ID,
		URL:               sess.URL,
	}, nil
}

// ParseWebhookEvent verifies the webhook signature and converts the
// Stripe event to a settlement event. Events the reconciler does not
// care about come back as nil.
func (p *StripeProvider) ParseWebhookEvent(payload []byte, signatureHeader string) (*payment.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.config.WebhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		p.logger.Warn("Stripe webhook signature verification failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	switch event.Type {
	case "checkout.session.completed":
		return p.toSettlementEvent(&event, payment.EventSucceeded)
	case "checkout.session.expired":
		return p.toSettlementEvent(&event, payment.EventCanceled)
	case "checkout.session.async_payment_failed":
		return p.toSettlementEvent(&event, payment.EventFailed)
	default:
		p.logger.Debug("Ignoring Stripe event", map[string]any{
			"event_type": event.Type,
		})
		return nil, nil
	}
}

func (p *StripeProvider) toSettlementEvent(event *stripe.Event, eventType payment.EventType) (*payment.Event, error) {
	sessionID, _ := event.Data.Object["id"].(string)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: event carries no session id", errs.ErrInvalidRequest)
	}

	out := &payment.Event{
		Type:              eventType,
		ProviderPaymentID: sessionID,
	}

	if amount, ok := event.Data.Object["amount_total"].(float64); ok {
		out.AmountCents = int64(amount)
	}

	metadata, _ := event.Data.Object["metadata"].(map[string]interface{})
	if metadata != nil {
		if userIDStr, ok := metadata["user_id"].(string); ok {
			if userID, err := strconv.ParseUint(userIDStr, 10, 64); err == nil {
				out.UserID = userID
			}
		}
		if packageID, ok := metadata["package_id"].(string); ok {
			out.PackageID = packageID
		}
		if creditsStr, ok := metadata["credits"].(string); ok {
			if credits, err := strconv.ParseInt(creditsStr, 10, 64); err == nil {
				out.Credits = credits
			}
		}
		if bonusStr, ok := metadata["bonus_credits"].(string); ok {
			if bonus, err := strconv.ParseInt(bonusStr, 10, 64); err == nil {
				out.BonusCredits = bonus
			}
		}
	}

	return out, nil
}
