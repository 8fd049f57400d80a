package persistence

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
)

// GenerationJobRepository stores video-generation job records
type GenerationJobRepository interface {
	// Create saves a new job record
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, job *entity.GenerationJob) error

	// GetByID retrieves a job by its internal ID
	//
	// Possible errors:
	// - ErrJobNotFound: If no job with the ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.GenerationJob, error)

	// Update persists status, provider correlation ID, result URLs and the
	// error message of an existing job
	//
	// Possible errors:
	// - ErrJobNotFound: If no job with the ID exists
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, job *entity.GenerationJob) error

	// ListByUser returns a user's jobs, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]entity.GenerationJob, error)

	// CountCompletedByUser returns how many of the user's jobs completed
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CountCompletedByUser(ctx context.Context, userID uint64) (int64, error)
}
