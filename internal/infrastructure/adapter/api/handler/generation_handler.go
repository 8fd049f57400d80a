package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	domainerr "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/generation"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// GenerationHandler handles video generation HTTP requests
type GenerationHandler struct {
	coordinator *generation.Coordinator
	poller      *generation.Poller
	logger      coreport.Logger
}

// NewGenerationHandler creates a new generation handler instance
func NewGenerationHandler(coordinator *generation.Coordinator, poller *generation.Poller, logger coreport.Logger) *GenerationHandler {
	return &GenerationHandler{
		coordinator: coordinator,
		poller:      poller,
		logger:      logger,
	}
}

// Generate handles the POST /video/generate endpoint
func (h *GenerationHandler) Generate(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid generation request format", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.coordinator.Create(c.Request.Context(), userID, generation.CreateRequest{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Prompt:   req.Prompt,
		Mood:     req.Mood,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.GenerateVideoResponse{
		Job:              toJobResponse(result.Job),
		CreditsRemaining: result.CreditsRemaining,
	})
}

// GetStatus handles the GET /video/status/:id endpoint
func (h *GenerationHandler) GetStatus(c *gin.Context) {
	userID := middleware.UserID(c)
	jobID := c.Param("id")

	job, err := h.coordinator.GetStatus(c.Request.Context(), userID, jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// Wait handles the GET /video/wait/:id endpoint. It blocks until the job
// reaches a terminal state or the polling budget runs out; a still-live
// job is reported with 202 so the client can keep polling /video/status.
func (h *GenerationHandler) Wait(c *gin.Context) {
	userID := middleware.UserID(c)
	jobID := c.Param("id")

	outcome, err := h.poller.WaitForTerminal(c.Request.Context(), userID, jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if outcome.TimedOut {
		c.JSON(http.StatusAccepted, toJobResponse(outcome.Job))
		return
	}
	c.JSON(http.StatusOK, toJobResponse(outcome.Job))
}

// List handles the GET /video/list endpoint
func (h *GenerationHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	limit, offset := paginationParams(c)

	jobs, err := h.coordinator.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.JobListResponse{Jobs: make([]dto.JobResponse, 0, len(jobs))}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func toJobResponse(job *entity.GenerationJob) dto.JobResponse {
	return dto.JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Status:       string(job.Status),
		Prompt:       job.Prompt,
		Mood:         job.Mood,
		VideoURL:     job.VideoURL,
		ThumbnailURL: job.ThumbnailURL,
		Error:        job.Error,
		CreatedAt:    job.CreatedAt.UTC().Format(time.RFC3339),
		CompletedAt:  formatTime(job.CompletedAt),
	}
}

// paginationParams reads limit/offset query parameters with safe fallbacks
func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
