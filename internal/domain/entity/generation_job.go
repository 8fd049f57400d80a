package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a generation job
type JobStatus string

// Job statuses. Completed and failed are terminal: once reached, the
// record is never re-polled.
const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// MaxPromptLength caps the generation prompt
const MaxPromptLength = 300

// Moods accepted by the generation provider
var validMoods = map[string]struct{}{
	"happy":      {},
	"sad":        {},
	"epic":       {},
	"funny":      {},
	"calm":       {},
	"mysterious": {},
}

// GenerationJob tracks one video-generation attempt from creation through
// terminal status
type GenerationJob struct {
	ID            string     // Internal job identifier (UUID)
	UserID        uint64     // Owner of the job
	Title         string     // User-supplied title for the video
	ImageURL      string     // Source drawing handed to the provider
	Prompt        string     // Generation prompt, at most MaxPromptLength chars
	Mood          string     // One of the allowed mood values
	Status        JobStatus  // Current lifecycle state
	ProviderJobID string     // External correlation ID, present once accepted
	Error         string     // Failure reason, set on failed jobs
	VideoURL      string     // Result video, set on completion
	ThumbnailURL  string     // Result thumbnail, set on completion
	CreatedAt     time.Time  // When the job was created
	UpdatedAt     time.Time  // When the job was last updated
	CompletedAt   *time.Time // When the job reached a terminal status
}

// NewGenerationJob creates a pending job after validating the request fields
func NewGenerationJob(
	userID uint64,
	title, imageURL, prompt, mood string,
	timeProvider coreport.TimeProvider,
) (*GenerationJob, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, fmt.Errorf("%w: image URL is required", errs.ErrInvalidArgument)
	}
	if err := ValidatePrompt(prompt); err != nil {
		return nil, err
	}
	if !IsValidMood(mood) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidMood, mood)
	}

	now := timeProvider.Now()
	return &GenerationJob{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		ImageURL:  imageURL,
		Prompt:    strings.TrimSpace(prompt),
		Mood:      mood,
		Status:    JobStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidatePrompt checks the prompt is present and within the length cap
func ValidatePrompt(prompt string) error {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return fmt.Errorf("%w: prompt is required", errs.ErrInvalidPrompt)
	}
	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return fmt.Errorf("%w: prompt exceeds %d characters", errs.ErrInvalidPrompt, MaxPromptLength)
	}
	return nil
}

// IsValidMood validates if the mood is one of the allowed values
func IsValidMood(mood string) bool {
	_, ok := validMoods[mood]
	return ok
}

// IsValidJobStatus validates a provider-reported status value
func IsValidJobStatus(status string) bool {
	switch JobStatus(status) {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the job reached a final status
func (j *GenerationJob) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// MarkAccepted records the provider correlation ID and the status the
// provider reported on acceptance
func (j *GenerationJob) MarkAccepted(providerJobID string, status JobStatus, timeProvider coreport.TimeProvider) {
	j.ProviderJobID = providerJobID
	j.Status = status
	j.UpdatedAt = timeProvider.Now()
}

// MarkFailed moves the job to the failed terminal status with a reason
func (j *GenerationJob) MarkFailed(reason string, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	j.Status = JobStatusFailed
	j.Error = reason
	j.UpdatedAt = now
	j.CompletedAt = &now
}

// ApplyProviderStatus applies a provider-reported status update.
// Re-applying the currently stored status is a no-op; the returned bool
// says whether anything changed and needs persisting.
func (j *GenerationJob) ApplyProviderStatus(status JobStatus, videoURL, thumbnailURL, errMsg string, timeProvider coreport.TimeProvider) bool {
	if j.IsTerminal() {
		return false
	}
	if status == j.Status && videoURL == j.VideoURL && thumbnailURL == j.ThumbnailURL && errMsg == j.Error {
		return false
	}

	now := timeProvider.Now()
	j.Status = status
	j.VideoURL = videoURL
	j.ThumbnailURL = thumbnailURL
	j.Error = errMsg
	j.UpdatedAt = now
	if j.IsTerminal() {
		j.CompletedAt = &now
	}
	return true
}
