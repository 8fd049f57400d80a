package handler

import (
	"net/http"
	"time"

	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CreditHandler handles credit balance, history and check-in HTTP requests
type CreditHandler struct {
	ledgerService *ledger.Service
	logger        coreport.Logger
}

// NewCreditHandler creates a new credit handler instance
func NewCreditHandler(ledgerService *ledger.Service, logger coreport.Logger) *CreditHandler {
	return &CreditHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// GetBalance handles the GET /credits/balance endpoint
func (h *CreditHandler) GetBalance(c *gin.Context) {
	userID := middleware.UserID(c)

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  userID,
		Credits: balance,
	})
}

// CheckIn handles the POST /checkin endpoint
func (h *CreditHandler) CheckIn(c *gin.Context) {
	userID := middleware.UserID(c)

	user, err := h.ledgerService.DailyCheckIn(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckInResponse{
		CreditsEarned: h.ledgerService.CheckInBonus(),
		NewBalance:    user.Credits(),
		NextAvailable: user.NextCheckInAt().UTC().Format(time.RFC3339),
	})
}

// GetHistory handles the GET /credits/history endpoint
func (h *CreditHandler) GetHistory(c *gin.Context) {
	userID := middleware.UserID(c)
	limit, offset := paginationParams(c)

	entries, err := h.ledgerService.History(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.HistoryResponse{
		UserID:  userID,
		Entries: make([]dto.LedgerEntryResponse, 0, len(entries)),
	}
	for i := range entries {
		entry := &entries[i]
		resp.Entries = append(resp.Entries, dto.LedgerEntryResponse{
			ID:            entry.ID,
			Amount:        entry.Amount,
			Type:          string(entry.Type),
			Source:        string(entry.Source),
			RelatedID:     entry.RelatedID,
			ResultBalance: entry.ResultBalance,
			CreatedAt:     entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, resp)
}
