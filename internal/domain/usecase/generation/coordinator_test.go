package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	providerport "github.com/sketchmotion/credit-engine/internal/domain/port/provider"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/referral"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	persistencemocks "github.com/sketchmotion/credit-engine/mocks/port/persistence"
	providermocks "github.com/sketchmotion/credit-engine/mocks/port/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testVideoCost = 60

type coordinatorFixture struct {
	coordinator *Coordinator
	jobRepo     *persistencemocks.MockGenerationJobRepository
	userRepo    *persistencemocks.MockUserRepository
	uow         *persistencemocks.MockUnitOfWork
	client      *providermocks.MockGenerationClient
	timeMock    *coremocks.MockTimeProvider
	logMock     *coremocks.MockLogger
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	jobRepo := persistencemocks.NewMockGenerationJobRepository(t)
	userRepo := persistencemocks.NewMockUserRepository(t)
	uow := persistencemocks.NewMockUnitOfWork(t)
	client := providermocks.NewMockGenerationClient(t)

	ledgerService := ledger.NewService(uow, mockTime, mockLogger, ledger.DefaultConfig())
	referralService := referral.NewService(uow, mockTime, mockLogger, referral.DefaultConfig())

	return &coordinatorFixture{
		coordinator: NewCoordinator(jobRepo, userRepo, ledgerService, referralService, client, mockTime, mockLogger, testVideoCost),
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		uow:         uow,
		client:      client,
		timeMock:    mockTime,
		logMock:     mockLogger,
	}
}

func coordUser(t *testing.T, id uint64, credits int64) *entity.User {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()
	user, err := entity.NewUser(id, "", mockTime)
	require.NoError(t, err)
	user.SetCredits(credits, mockTime)
	return user
}

func validRequest() CreateRequest {
	return CreateRequest{
		Title:    "My drawing",
		ImageURL: "https://cdn.example.com/a.png",
		Prompt:   "a cat flying over the city",
		Mood:     "happy",
	}
}

func TestCoordinatorCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted submission charges after acceptance", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(coordUser(t, 1, 100), nil).Once()
		f.jobRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(job *entity.GenerationJob) bool {
			return job.UserID == 1 && job.Status == entity.JobStatusPending
		})).Return(nil).Once()
		f.client.EXPECT().StartGeneration(mock.Anything, providerport.GenerationRequest{
			ImageURL: "https://cdn.example.com/a.png",
			Prompt:   "a cat flying over the city",
			Mood:     "happy",
		}).Return(&providerport.GenerationResult{ID: "prov-1", Status: "processing"}, nil).Once()
		f.jobRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(job *entity.GenerationJob) bool {
			return job.ProviderJobID == "prov-1" && job.Status == entity.JobStatusProcessing
		})).Return(nil).Once()

		// The charge runs through the ledger inside one transaction.
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.userRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(-testVideoCost)).
			Return(coordUser(t, 1, 40), nil).Once()
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)
		f.uow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.Amount == -testVideoCost && entry.Source == entity.SourceVideoGeneration
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result, err := f.coordinator.Create(ctx, 1, validRequest())

		require.NoError(t, err)
		assert.Equal(t, entity.JobStatusProcessing, result.Job.Status)
		assert.Equal(t, "prov-1", result.Job.ProviderJobID)
		assert.Equal(t, int64(40), result.CreditsRemaining)
	})

	t.Run("Balance pre-check rejects before any persistence", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(coordUser(t, 1, testVideoCost-1), nil).Once()

		result, err := f.coordinator.Create(ctx, 1, validRequest())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
	})

	t.Run("Invalid mood fails validation first", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		req := validRequest()
		req.Mood = "angry"
		result, err := f.coordinator.Create(ctx, 1, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidMood)
	})

	t.Run("Provider rejection fails the job without charging", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(coordUser(t, 1, 100), nil).Once()
		f.jobRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		providerErr := errs.NewProviderError("start_generation", 503, 3, errors.New("upstream down"))
		f.client.EXPECT().StartGeneration(mock.Anything, mock.Anything).
			Return(nil, providerErr).Once()
		f.jobRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(job *entity.GenerationJob) bool {
			return job.Status == entity.JobStatusFailed && job.Error != ""
		})).Return(nil).Once()

		// No expectations on the unit of work: the balance must not move.
		result, err := f.coordinator.Create(ctx, 1, validRequest())

		assert.ErrorIs(t, err, errs.ErrProviderUnavailable)
		require.NotNil(t, result)
		assert.Equal(t, entity.JobStatusFailed, result.Job.Status)
		assert.Equal(t, int64(100), result.CreditsRemaining)
	})

	t.Run("Losing the charge race fails the accepted job", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(coordUser(t, 1, 100), nil).Once()
		f.jobRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.client.EXPECT().StartGeneration(mock.Anything, mock.Anything).
			Return(&providerport.GenerationResult{ID: "prov-1", Status: "processing"}, nil).Once()
		f.jobRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(job *entity.GenerationJob) bool {
			return job.Status == entity.JobStatusProcessing
		})).Return(nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.userRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(-testVideoCost)).
			Return(nil, errs.NewInsufficientCreditsError(1, testVideoCost, 0)).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		f.jobRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(job *entity.GenerationJob) bool {
			return job.Status == entity.JobStatusFailed
		})).Return(nil).Once()

		result, err := f.coordinator.Create(ctx, 1, validRequest())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
	})
}

func TestCoordinatorGetStatus(t *testing.T) {
	ctx := context.Background()

	liveJob := func(t *testing.T, f *coordinatorFixture) *entity.GenerationJob {
		job, err := entity.NewGenerationJob(1, "t", "https://cdn.example.com/a.png", "a cat", "happy", f.timeMock)
		require.NoError(t, err)
		job.MarkAccepted("prov-1", entity.JobStatusProcessing, f.timeMock)
		return job
	}

	t.Run("Ownership mismatch is forbidden", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		job := liveJob(t, f)

		f.jobRepo.EXPECT().GetByID(mock.Anything, job.ID).Return(job, nil).Once()

		result, err := f.coordinator.GetStatus(ctx, 99, job.ID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Terminal jobs skip the provider", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		job := liveJob(t, f)
		job.MarkFailed("boom", f.timeMock)

		f.jobRepo.EXPECT().GetByID(mock.Anything, job.ID).Return(job, nil).Once()

		result, err := f.coordinator.GetStatus(ctx, 1, job.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.JobStatusFailed, result.Status)
	})

	t.Run("Unchanged provider status persists nothing", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		job := liveJob(t, f)

		f.jobRepo.EXPECT().GetByID(mock.Anything, job.ID).Return(job, nil).Once()
		f.client.EXPECT().GetGeneration(mock.Anything, "prov-1").
			Return(&providerport.GenerationResult{ID: "prov-1", Status: "processing"}, nil).Once()

		result, err := f.coordinator.GetStatus(ctx, 1, job.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.JobStatusProcessing, result.Status)
	})

	t.Run("Completion awards the first-video flag before persisting", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		job := liveJob(t, f)

		f.jobRepo.EXPECT().GetByID(mock.Anything, job.ID).Return(job, nil).Once()
		f.client.EXPECT().GetGeneration(mock.Anything, "prov-1").
			Return(&providerport.GenerationResult{
				ID:           "prov-1",
				Status:       "completed",
				VideoURL:     "https://cdn/video.mp4",
				ThumbnailURL: "https://cdn/thumb.jpg",
			}, nil).Once()

		// First-generation processing: flag flip commits, user was not referred.
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.userRepo.EXPECT().MarkFirstVideoGenerated(mock.Anything, uint64(1)).Return(true, nil).Once()
		f.uow.EXPECT().GetReferralRepository(mock.Anything).Return(mockReferralRepo).Once()
		mockReferralRepo.EXPECT().GetByReferredUser(mock.Anything, uint64(1)).
			Return(nil, errs.ErrReferralNotFound).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.jobRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(j *entity.GenerationJob) bool {
			return j.Status == entity.JobStatusCompleted && j.VideoURL == "https://cdn/video.mp4"
		})).Return(nil).Once()

		result, err := f.coordinator.GetStatus(ctx, 1, job.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.JobStatusCompleted, result.Status)
		assert.NotNil(t, result.CompletedAt)
	})

	t.Run("Unknown provider status is treated as still processing", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		job := liveJob(t, f)

		f.jobRepo.EXPECT().GetByID(mock.Anything, job.ID).Return(job, nil).Once()
		f.client.EXPECT().GetGeneration(mock.Anything, "prov-1").
			Return(&providerport.GenerationResult{ID: "prov-1", Status: "rendering"}, nil).Once()

		result, err := f.coordinator.GetStatus(ctx, 1, job.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.JobStatusProcessing, result.Status)
	})
}

func TestCoordinatorList(t *testing.T) {
	ctx := context.Background()

	t.Run("Pagination defaults are applied", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.jobRepo.EXPECT().ListByUser(mock.Anything, uint64(1), 20, 0).
			Return([]entity.GenerationJob{}, nil).Once()

		jobs, err := f.coordinator.List(ctx, 1, 0, -1)

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("Zero user ID is rejected", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		jobs, err := f.coordinator.List(ctx, 0, 10, 0)

		assert.Nil(t, jobs)
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})
}
