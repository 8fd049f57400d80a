package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerationJob(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid job creation", func(t *testing.T) {
		job, err := NewGenerationJob(1, "My drawing", "https://cdn.example.com/a.png", "a cat flying", "happy", mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, job.ID)
		assert.Equal(t, uint64(1), job.UserID)
		assert.Equal(t, JobStatusPending, job.Status)
		assert.Empty(t, job.ProviderJobID)
		assert.Nil(t, job.CompletedAt)
		assert.Equal(t, fixedTime, job.CreatedAt)
	})

	t.Run("Title and prompt are trimmed", func(t *testing.T) {
		job, err := NewGenerationJob(1, "  My drawing  ", "https://cdn.example.com/a.png", "  a cat  ", "happy", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "My drawing", job.Title)
		assert.Equal(t, "a cat", job.Prompt)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		job, err := NewGenerationJob(0, "t", "https://cdn.example.com/a.png", "a cat", "happy", mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, job)
	})

	t.Run("Missing image URL", func(t *testing.T) {
		job, err := NewGenerationJob(1, "t", "   ", "a cat", "happy", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Nil(t, job)
	})

	t.Run("Invalid mood", func(t *testing.T) {
		job, err := NewGenerationJob(1, "t", "https://cdn.example.com/a.png", "a cat", "angry", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidMood)
		assert.Nil(t, job)
	})
}

func TestValidatePrompt(t *testing.T) {
	t.Run("Empty prompt", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePrompt(""), errs.ErrInvalidPrompt)
		assert.ErrorIs(t, ValidatePrompt("   "), errs.ErrInvalidPrompt)
	})

	t.Run("Prompt at the cap", func(t *testing.T) {
		assert.NoError(t, ValidatePrompt(strings.Repeat("a", MaxPromptLength)))
	})

	t.Run("Prompt over the cap", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePrompt(strings.Repeat("a", MaxPromptLength+1)), errs.ErrInvalidPrompt)
	})

	t.Run("Cap counts runes, not bytes", func(t *testing.T) {
		// 300 multi-byte runes are fine even though the byte length is larger.
		assert.NoError(t, ValidatePrompt(strings.Repeat("é", MaxPromptLength)))
	})
}

func TestIsValidMood(t *testing.T) {
	for _, mood := range []string{"happy", "sad", "epic", "funny", "calm", "mysterious"} {
		assert.True(t, IsValidMood(mood), mood)
	}
	assert.False(t, IsValidMood("HAPPY"))
	assert.False(t, IsValidMood(""))
	assert.False(t, IsValidMood("angry"))
}

func TestGenerationJobTransitions(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newJob := func(t *testing.T, mockTime *coremocks.MockTimeProvider) *GenerationJob {
		job, err := NewGenerationJob(1, "t", "https://cdn.example.com/a.png", "a cat", "happy", mockTime)
		require.NoError(t, err)
		return job
	}

	t.Run("MarkAccepted records correlation ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		job := newJob(t, mockTime)

		job.MarkAccepted("prov-123", JobStatusProcessing, mockTime)

		assert.Equal(t, "prov-123", job.ProviderJobID)
		assert.Equal(t, JobStatusProcessing, job.Status)
		assert.False(t, job.IsTerminal())
	})

	t.Run("MarkFailed is terminal", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		job := newJob(t, mockTime)

		job.MarkFailed("provider rejected", mockTime)

		assert.Equal(t, JobStatusFailed, job.Status)
		assert.Equal(t, "provider rejected", job.Error)
		assert.True(t, job.IsTerminal())
		require.NotNil(t, job.CompletedAt)
		assert.Equal(t, fixedTime, *job.CompletedAt)
	})

	t.Run("ApplyProviderStatus completion stamps CompletedAt", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		job := newJob(t, mockTime)
		job.MarkAccepted("prov-123", JobStatusProcessing, mockTime)

		changed := job.ApplyProviderStatus(JobStatusCompleted, "https://cdn/video.mp4", "https://cdn/thumb.jpg", "", mockTime)

		assert.True(t, changed)
		assert.Equal(t, JobStatusCompleted, job.Status)
		assert.Equal(t, "https://cdn/video.mp4", job.VideoURL)
		require.NotNil(t, job.CompletedAt)
	})

	t.Run("Re-applying the same status is a no-op", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		job := newJob(t, mockTime)
		job.MarkAccepted("prov-123", JobStatusProcessing, mockTime)

		assert.False(t, job.ApplyProviderStatus(JobStatusProcessing, "", "", "", mockTime))
	})

	t.Run("Terminal jobs ignore further updates", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		job := newJob(t, mockTime)
		job.MarkFailed("boom", mockTime)

		assert.False(t, job.ApplyProviderStatus(JobStatusCompleted, "https://cdn/video.mp4", "", "", mockTime))
		assert.Equal(t, JobStatusFailed, job.Status)
	})
}
