package generation

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/port/persistence"
	"github.com/sketchmotion/credit-engine/internal/domain/port/provider"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/referral"
)

// CreateRequest is the input for starting a new generation job
type CreateRequest struct {
	Title    string
	ImageURL string
	Prompt   string
	Mood     string
}

// CreateResult is what the caller gets back from a create attempt
type CreateResult struct {
	Job              *entity.GenerationJob
	CreditsRemaining int64
}

// Coordinator drives a generation job through its state machine:
// validate -> balance pre-check -> persist pending -> submit to provider ->
// charge on confirmed acceptance -> reconcile status on later polls.
// Credits are spent only after the provider accepted the job; a rejected
// submission marks the job failed and leaves the balance untouched.
type Coordinator struct {
	jobRepo      persistence.GenerationJobRepository
	userRepo     persistence.UserRepository
	ledger       *ledger.Service
	referral     *referral.Service
	client       provider.GenerationClient
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	videoCost    int64
}

// NewCoordinator creates a new generation job coordinator
func NewCoordinator(
	jobRepo persistence.GenerationJobRepository,
	userRepo persistence.UserRepository,
	ledgerService *ledger.Service,
	referralService *referral.Service,
	client provider.GenerationClient,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	videoCost int64,
) *Coordinator {
	return &Coordinator{
		jobRepo:      jobRepo,
		userRepo:     userRepo,
		ledger:       ledgerService,
		referral:     referralService,
		client:       client,
		timeProvider: timeProvider,
		logger:       logger,
		videoCost:    videoCost,
	}
}

// Create validates the request, pre-checks the balance, persists a pending
// job and submits it to the provider. The balance pre-check is not a
// reservation: the authoritative charge is the atomic spend after the
// provider accepts, which rejects the loser of a double-submit race.
func (c *Coordinator) Create(ctx context.Context, userID uint64, req CreateRequest) (*CreateResult, error) {
	job, err := entity.NewGenerationJob(userID, req.Title, req.ImageURL, req.Prompt, req.Mood, c.timeProvider)
	if err != nil {
		return nil, err
	}

	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Credits() < c.videoCost {
		return nil, errs.NewInsufficientCreditsError(userID, c.videoCost, user.Credits())
	}

	if err := c.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return c.submit(ctx, user, job)
}

// submit hands the pending job to the provider and charges on acceptance
func (c *Coordinator) submit(ctx context.Context, user *entity.User, job *entity.GenerationJob) (*CreateResult, error) {
	result, err := c.client.StartGeneration(ctx, provider.GenerationRequest{
		ImageURL: job.ImageURL,
		Prompt:   job.Prompt,
		Mood:     job.Mood,
	})
	if err != nil {
		// No charge: the credit spend is conditioned on acceptance.
		job.MarkFailed(err.Error(), c.timeProvider)
		if updateErr := c.jobRepo.Update(ctx, job); updateErr != nil {
			c.logger.Error("Failed to persist failed job after provider error", map[string]any{
				"job_id": job.ID,
				"error":  updateErr.Error(),
			})
		}
		c.logger.Warn("Generation submission rejected by provider", map[string]any{
			"job_id":  job.ID,
			"user_id": job.UserID,
			"error":   err.Error(),
		})
		return &CreateResult{Job: job, CreditsRemaining: user.Credits()}, err
	}

	job.MarkAccepted(result.ID, mapProviderStatus(result.Status), c.timeProvider)
	if err := c.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	charged, err := c.ledger.Spend(ctx, job.UserID, c.videoCost, entity.SourceVideoGeneration, job.ID)
	if err != nil {
		if errs.IsInsufficientCreditsError(err) {
			// Lost a double-submit race: another spend drained the balance
			// between the pre-check and the charge.
			job.MarkFailed("insufficient credits at charge time", c.timeProvider)
			if updateErr := c.jobRepo.Update(ctx, job); updateErr != nil {
				c.logger.Error("Failed to persist job after losing charge race", map[string]any{
					"job_id": job.ID,
					"error":  updateErr.Error(),
				})
			}
		}
		return nil, err
	}

	c.logger.Info("Generation job accepted and charged", map[string]any{
		"job_id":          job.ID,
		"user_id":         job.UserID,
		"provider_job_id": job.ProviderJobID,
		"status":          string(job.Status),
		"cost":            c.videoCost,
		"balance":         charged.Credits(),
	})
	return &CreateResult{Job: job, CreditsRemaining: charged.Credits()}, nil
}

// GetStatus returns the job's current state, reconciling it against the
// provider when the job is still live. Terminal jobs are returned from
// the store without a provider call; duplicate polls are harmless.
func (c *Coordinator) GetStatus(ctx context.Context, userID uint64, jobID string) (*entity.GenerationJob, error) {
	job, err := c.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, errs.ErrForbidden
	}

	if job.IsTerminal() {
		return job, nil
	}
	if job.ProviderJobID == "" {
		// Never accepted: nothing to ask the provider about.
		return job, nil
	}

	result, err := c.client.GetGeneration(ctx, job.ProviderJobID)
	if err != nil {
		return nil, err
	}

	changed := job.ApplyProviderStatus(
		mapProviderStatus(result.Status),
		result.VideoURL,
		result.ThumbnailURL,
		result.Error,
		c.timeProvider,
	)
	if !changed {
		return job, nil
	}

	// Award the first-video referral bonus before persisting the terminal
	// status: if the award fails, the stored job stays live and the next
	// poll re-drives it, with the one-shot flags guarding double grants.
	if job.Status == entity.JobStatusCompleted {
		if err := c.referral.ProcessFirstGeneration(ctx, userID, job.ID); err != nil {
			return nil, err
		}
	}

	if err := c.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	c.logger.Info("Generation job status updated", map[string]any{
		"job_id":  job.ID,
		"user_id": userID,
		"status":  string(job.Status),
	})
	return job, nil
}

// List returns a page of the user's jobs, newest first
func (c *Coordinator) List(ctx context.Context, userID uint64, limit, offset int) ([]entity.GenerationJob, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return c.jobRepo.ListByUser(ctx, userID, limit, offset)
}

// VideoCost returns the configured per-generation charge
func (c *Coordinator) VideoCost() int64 {
	return c.videoCost
}

// mapProviderStatus normalizes a provider-reported status string. Unknown
// values are treated as still processing rather than failing the poll.
func mapProviderStatus(status string) entity.JobStatus {
	if entity.IsValidJobStatus(status) {
		return entity.JobStatus(status)
	}
	return entity.JobStatusProcessing
}
