package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// GenerationJobRepository implements the persistence.GenerationJobRepository interface using GORM
type GenerationJobRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGenerationJobRepository creates a new GenerationJobRepository instance
func NewGenerationJobRepository(db *gorm.DB, logger coreport.Logger) *GenerationJobRepository {
	return &GenerationJobRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a job entity to a database model
func (r *GenerationJobRepository) entityToModel(job *entity.GenerationJob) model.GenerationJob {
	return model.GenerationJob{
		ID:            job.ID,
		UserID:        job.UserID,
		Title:         job.Title,
		ImageURL:      job.ImageURL,
		Prompt:        job.Prompt,
		Mood:          job.Mood,
		Status:        string(job.Status),
		ProviderJobID: job.ProviderJobID,
		Error:         job.Error,
		VideoURL:      job.VideoURL,
		ThumbnailURL:  job.ThumbnailURL,
		CreatedAt:     job.CreatedAt,
		UpdatedAt:     job.UpdatedAt,
		CompletedAt:   job.CompletedAt,
	}
}

// modelToEntity converts a job model to an entity
func (r *GenerationJobRepository) modelToEntity(m *model.GenerationJob) *entity.GenerationJob {
	return &entity.GenerationJob{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		ImageURL:      m.ImageURL,
		Prompt:        m.Prompt,
		Mood:          m.Mood,
		Status:        entity.JobStatus(m.Status),
		ProviderJobID: m.ProviderJobID,
		Error:         m.Error,
		VideoURL:      m.VideoURL,
		ThumbnailURL:  m.ThumbnailURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CompletedAt:   m.CompletedAt,
	}
}

// Create saves a new generation job
func (r *GenerationJobRepository) Create(ctx context.Context, job *entity.GenerationJob) error {
	r.logger.Debug("Creating generation job", map[string]any{
		"job_id":  job.ID,
		"user_id": job.UserID,
		"mood":    job.Mood,
	})

	jobModel := r.entityToModel(job)

	result := r.db.WithContext(ctx).Create(&jobModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrConflict
		}
		r.logger.Error("Failed to create generation job", map[string]any{
			"job_id": job.ID,
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Generation job created", map[string]any{
		"job_id":  job.ID,
		"user_id": job.UserID,
	})
	return nil
}

// GetByID retrieves a generation job by ID
func (r *GenerationJobRepository) GetByID(ctx context.Context, id string) (*entity.GenerationJob, error) {
	var jobModel model.GenerationJob
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Generation job not found", map[string]any{
				"job_id": id,
			})
			return nil, errs.ErrJobNotFound
		}
		r.logger.Error("Failed to get generation job", map[string]any{
			"job_id": id,
			"error":  result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&jobModel), nil
}

// Update persists the current state of a generation job
func (r *GenerationJobRepository) Update(ctx context.Context, job *entity.GenerationJob) error {
	jobModel := r.entityToModel(job)

	result := r.db.WithContext(ctx).Model(&model.GenerationJob{}).
		Where("id = ?", job.ID).
		Updates(map[string]interface{}{
			"status":          jobModel.Status,
			"provider_job_id": jobModel.ProviderJobID,
			"error":           jobModel.Error,
			"video_url":       jobModel.VideoURL,
			"thumbnail_url":   jobModel.ThumbnailURL,
			"updated_at":      jobModel.UpdatedAt,
			"completed_at":    jobModel.CompletedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update generation job", map[string]any{
			"job_id": job.ID,
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Generation job not found during update", map[string]any{
			"job_id": job.ID,
		})
		return errs.ErrJobNotFound
	}

	r.logger.Debug("Generation job updated", map[string]any{
		"job_id": job.ID,
		"status": job.Status,
	})
	return nil
}

// ListByUser returns the user's jobs newest first
func (r *GenerationJobRepository) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]entity.GenerationJob, error) {
	var models []model.GenerationJob
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list generation jobs", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	jobs := make([]entity.GenerationJob, 0, len(models))
	for i := range models {
		jobs = append(jobs, *r.modelToEntity(&models[i]))
	}
	return jobs, nil
}

// CountCompletedByUser returns how many jobs the user has completed
func (r *GenerationJobRepository) CountCompletedByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.GenerationJob{}).
		Where("user_id = ? AND status = ?", userID, string(entity.JobStatusCompleted)).
		Count(&count)

	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}
