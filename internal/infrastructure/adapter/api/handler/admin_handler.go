package handler

import (
	"net/http"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	domainerr "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles manual credit adjustments by support staff
type AdminHandler struct {
	ledgerService *ledger.Service
	logger        coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(ledgerService *ledger.Service, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// AwardCredits handles the POST /admin/credits/award endpoint
func (h *AdminHandler) AwardCredits(c *gin.Context) {
	h.adjust(c, false)
}

// DeductCredits handles the POST /admin/credits/deduct endpoint
func (h *AdminHandler) DeductCredits(c *gin.Context) {
	h.adjust(c, true)
}

func (h *AdminHandler) adjust(c *gin.Context, deduct bool) {
	var req dto.AdminCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Amount must be positive",
		})
		return
	}

	var (
		user *entity.User
		err  error
	)
	if deduct {
		user, err = h.ledgerService.Spend(c.Request.Context(), req.UserID, req.Amount, entity.SourceAdminAward, req.Reason)
	} else {
		user, err = h.ledgerService.Earn(c.Request.Context(), req.UserID, req.Amount, entity.SourceAdminAward, req.Reason)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("Admin credit adjustment applied", map[string]any{
		"user_id": req.UserID,
		"amount":  req.Amount,
		"deduct":  deduct,
		"reason":  req.Reason,
	})

	c.JSON(http.StatusOK, dto.AdminCreditResponse{
		UserID:     req.UserID,
		NewBalance: user.Credits(),
	})
}
