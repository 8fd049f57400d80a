package referral

import (
	"context"
	"testing"
	"time"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	persistencemocks "github.com/sketchmotion/credit-engine/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTimeProvider(t *testing.T) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return mockTime
}

func newTestLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func testUser(t *testing.T, id uint64, credits int64) *entity.User {
	mockTime := newTestTimeProvider(t)
	user, err := entity.NewUser(id, "", mockTime)
	require.NoError(t, err)
	user.SetCredits(credits, mockTime)
	return user
}

func TestProcessSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty code is a no-op", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		assert.NoError(t, service.ProcessSignup(ctx, "   ", 2))
	})

	t.Run("Unknown code is a no-op", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, "UNKNOWN").
			Return(nil, errs.ErrUserNotFound).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		assert.NoError(t, service.ProcessSignup(ctx, "UNKNOWN", 2))
	})

	t.Run("Self-referral awards nothing", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)

		referrer := testUser(t, 2, 0)
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, referrer.ReferralCode).
			Return(referrer, nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		assert.NoError(t, service.ProcessSignup(ctx, referrer.ReferralCode, 2))
	})

	t.Run("Both sides are granted in one transaction", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)

		referrer := testUser(t, 1, 100)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo)
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetReferralRepository(mock.Anything).Return(mockReferralRepo).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo)
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, referrer.ReferralCode).
			Return(referrer, nil).Once()
		mockReferralRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(rel *entity.Referral) bool {
			return rel.ReferrerID == 1 && rel.ReferredUserID == 2 && rel.CodeUsed == referrer.ReferralCode
		})).Return(nil).Once()
		mockReferralRepo.EXPECT().MarkSignupBonusAwarded(mock.Anything, uint64(1), uint64(2)).
			Return(true, nil).Once()

		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(20)).
			Return(testUser(t, 1, 120), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.UserID == 1 && entry.Amount == 20 && entry.Source == entity.SourceReferral
		})).Return(nil).Once()

		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(2), int64(10)).
			Return(testUser(t, 2, 40), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.UserID == 2 && entry.Amount == 10 && entry.Source == entity.SourceReferralSignup
		})).Return(nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		require.NoError(t, service.ProcessSignup(ctx, referrer.ReferralCode, 2))
	})

	t.Run("Second call for the same pair awards nothing", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		referrer := testUser(t, 1, 120)

		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetReferralRepository(mock.Anything).Return(mockReferralRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, referrer.ReferralCode).
			Return(referrer, nil).Once()
		mockReferralRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errs.ErrConstraintViolation).Once()
		mockReferralRepo.EXPECT().MarkSignupBonusAwarded(mock.Anything, uint64(1), uint64(2)).
			Return(false, nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		require.NoError(t, service.ProcessSignup(ctx, referrer.ReferralCode, 2))
	})
}

func TestProcessFirstGeneration(t *testing.T) {
	ctx := context.Background()

	t.Run("Flag already set is a no-op", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().MarkFirstVideoGenerated(mock.Anything, uint64(2)).
			Return(false, nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		require.NoError(t, service.ProcessFirstGeneration(ctx, 2, "job-1"))
	})

	t.Run("Non-referred user just persists the flag", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetReferralRepository(mock.Anything).Return(mockReferralRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().MarkFirstVideoGenerated(mock.Anything, uint64(2)).
			Return(true, nil).Once()
		mockReferralRepo.EXPECT().GetByReferredUser(mock.Anything, uint64(2)).
			Return(nil, errs.ErrReferralNotFound).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		require.NoError(t, service.ProcessFirstGeneration(ctx, 2, "job-1"))
	})

	t.Run("Referred user awards the referrer once", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)

		rel := &entity.Referral{ID: 10, ReferrerID: 1, ReferredUserID: 2, SignupBonusAwarded: true}

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo)
		mockUow.EXPECT().GetReferralRepository(mock.Anything).Return(mockReferralRepo).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().MarkFirstVideoGenerated(mock.Anything, uint64(2)).
			Return(true, nil).Once()
		mockReferralRepo.EXPECT().GetByReferredUser(mock.Anything, uint64(2)).
			Return(rel, nil).Once()
		mockReferralRepo.EXPECT().MarkFirstVideoBonusAwarded(mock.Anything, uint64(1), uint64(2)).
			Return(true, nil).Once()
		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(50)).
			Return(testUser(t, 1, 170), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.UserID == 1 && entry.Amount == 50 &&
				entry.Source == entity.SourceReferralFirstVideo && entry.RelatedID == "job-1"
		})).Return(nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		require.NoError(t, service.ProcessFirstGeneration(ctx, 2, "job-1"))
	})

	t.Run("Bonus flag already flipped still commits the video flag", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)

		rel := &entity.Referral{ID: 10, ReferrerID: 1, ReferredUserID: 2}

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetReferralRepository(mock.Anything).Return(mockReferralRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().MarkFirstVideoGenerated(mock.Anything, uint64(2)).
			Return(true, nil).Once()
		mockReferralRepo.EXPECT().GetByReferredUser(mock.Anything, uint64(2)).
			Return(rel, nil).Once()
		mockReferralRepo.EXPECT().MarkFirstVideoBonusAwarded(mock.Anything, uint64(1), uint64(2)).
			Return(false, nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		require.NoError(t, service.ProcessFirstGeneration(ctx, 2, "job-1"))
	})
}
