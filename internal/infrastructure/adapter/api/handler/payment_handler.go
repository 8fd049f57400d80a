package handler

import (
	"io"
	"net/http"

	domainerr "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/payment"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WebhookParser verifies and converts a raw provider webhook into a
// settlement event. Uninteresting events come back as nil.
type WebhookParser interface {
	ParseWebhookEvent(payload []byte, signatureHeader string) (*payment.Event, error)
}

// PaymentHandler handles credit purchase HTTP requests
type PaymentHandler struct {
	paymentService *payment.Service
	webhookParser  WebhookParser
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService *payment.Service, webhookParser WebhookParser, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		webhookParser:  webhookParser,
		logger:         logger,
	}
}

// CreateCheckout handles the POST /payments/checkout endpoint
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	session, err := h.paymentService.CreateCheckout(c.Request.Context(), userID, req.PackageID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		ProviderPaymentID: session.ProviderPaymentID,
		URL:               session.URL,
	})
}

// ListPackages handles the GET /payments/packages endpoint
func (h *PaymentHandler) ListPackages(c *gin.Context) {
	packages, err := h.paymentService.ListPackages(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.PackageListResponse{Packages: make([]dto.PackageResponse, 0, len(packages))}
	for i := range packages {
		pkg := &packages[i]
		resp.Packages = append(resp.Packages, dto.PackageResponse{
			ID:           pkg.ID,
			Name:         pkg.Name,
			PriceCents:   pkg.PriceCents,
			Credits:      pkg.Credits,
			BonusCredits: pkg.BonusCredits,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// HandleWebhook handles the POST /payments/webhook endpoint. Processing
// failures return 5xx without acknowledging so the provider redelivers;
// the grant path is idempotent, so redelivery is safe.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Unable to read webhook payload",
		})
		return
	}

	event, err := h.webhookParser.ParseWebhookEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Webhook verification failed",
		})
		return
	}
	if event == nil {
		// Event type we don't act on; acknowledge so it is not redelivered.
		c.Status(http.StatusOK)
		return
	}

	if err := h.paymentService.HandleEvent(c.Request.Context(), *event); err != nil {
		h.logger.Error("Webhook processing failed, leaving unacknowledged", map[string]any{
			"provider_payment_id": event.ProviderPaymentID,
			"event_type":          event.Type,
			"error":               err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Webhook processing failed",
		})
		return
	}

	c.Status(http.StatusOK)
}
