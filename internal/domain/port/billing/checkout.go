package billing

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
)

// CheckoutSession is a hosted payment page for one credit package.
// ProviderPaymentID is the payment provider's identifier that later
// webhook events will carry back.
type CheckoutSession struct {
	ProviderPaymentID string
	URL               string
}

// CheckoutProvider creates hosted checkout sessions with the payment
// provider. Webhook signature verification lives with the transport, not
// behind this port.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, userID uint64, pkg entity.CreditPackage) (*CheckoutSession, error)
}
