package handler

import (
	"net/http"

	domainerr "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	userUseCase "github.com/sketchmotion/credit-engine/internal/domain/usecase/user"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user onboarding HTTP requests
type UserHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.Service, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register handles the POST /user/register endpoint. It is called by the
// auth service after account creation to enroll the user in the credit
// economy and settle signup and referral bonuses.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.UserID, req.ReferralCode)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:       user.ID,
		Credits:      user.Credits(),
		ReferralCode: user.ReferralCode,
	})
}
