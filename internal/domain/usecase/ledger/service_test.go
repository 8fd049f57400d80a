package ledger

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

func userWithCredits(t *testing.T, id uint64, credits int64) *entity.User {
	mockTime := newTestTimeProvider(t)
	user, err := entity.NewUser(id, "", mockTime)
	require.NoError(t, err)
	user.SetCredits(credits, mockTime)
	return user
}

func TestEarn(t *testing.T) {
	ctx := context.Background()

	t.Run("Balance change and ledger entry commit together", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(30)).
			Return(userWithCredits(t, 1, 30), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.UserID == 1 && entry.Amount == 30 &&
				entry.Source == entity.SourceSignup && entry.ResultBalance == 30
		})).Return(nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, err := service.Earn(ctx, 1, 30, entity.SourceSignup, "")

		require.NoError(t, err)
		assert.Equal(t, int64(30), user.Credits())
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, err := service.Earn(ctx, 1, 0, entity.SourceSignup, "")

		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, user)
	})

	t.Run("Zero user ID is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, err := service.Earn(ctx, 0, 10, entity.SourceSignup, "")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})
}

func TestSpend(t *testing.T) {
	ctx := context.Background()

	t.Run("Spend appends a negative entry", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(-60)).
			Return(userWithCredits(t, 1, 40), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.Amount == -60 && entry.Type == entity.TypeSpent &&
				entry.RelatedID == "job-1" && entry.ResultBalance == 40
		})).Return(nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, err := service.Spend(ctx, 1, 60, entity.SourceVideoGeneration, "job-1")

		require.NoError(t, err)
		assert.Equal(t, int64(40), user.Credits())
	})

	t.Run("Insufficient credits surface unchanged", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(-60)).
			Return(nil, errs.NewInsufficientCreditsError(1, 60, 45)).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, err := service.Spend(ctx, 1, 60, entity.SourceVideoGeneration, "job-1")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)

		var detailed *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(60), detailed.Required)
		assert.Equal(t, int64(45), detailed.Available)
	})

	t.Run("Lost lock race is retried and succeeds", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)
		mockTime := newTestTimeProvider(t)
		mockTime.EXPECT().SleepContext(mock.Anything, mock.Anything).Return(nil).Once()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Times(2)
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Times(2)
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(-60)).
			Return(nil, errs.ErrConflict).Once()
		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(-60)).
			Return(userWithCredits(t, 1, 40), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockTime, newTestLogger(t), DefaultConfig())

		user, err := service.Spend(ctx, 1, 60, entity.SourceVideoGeneration, "job-1")

		require.NoError(t, err)
		assert.Equal(t, int64(40), user.Credits())
	})
}

func TestDailyCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Grant and timestamp are one atomic unit", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().ApplyCheckIn(mock.Anything, uint64(1), int64(5)).
			Return(userWithCredits(t, 1, 35), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.Amount == 5 && entry.Source == entity.SourceCheckin &&
				entry.Type == entity.TypeBonus
		})).Return(nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, err := service.DailyCheckIn(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(35), user.Credits())
	})

	t.Run("Window not elapsed surfaces the eligibility error", func(t *testing.T) {
		next := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().ApplyCheckIn(mock.Anything, uint64(1), int64(5)).
			Return(nil, errs.NewCheckInNotAvailableError(1, next)).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, err := service.DailyCheckIn(ctx, 1)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrCheckInNotAvailable)

		var detailed *errs.CheckInNotAvailableError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, next, detailed.NextAvailable)
	})
}

func TestGrantPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("First delivery applies the grant", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)
		mockPaymentRepo := persistencemocks.NewMockPaymentRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Times(2)
		mockUow.EXPECT().GetPaymentRepository(mock.Anything).Return(mockPaymentRepo).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockTxRepo.EXPECT().ExistsBySourceAndRelatedID(mock.Anything, entity.SourcePurchase, "cs_test_abc").
			Return(false, nil).Once()
		mockPaymentRepo.EXPECT().UpdateStatus(mock.Anything, "cs_test_abc", entity.PaymentStatusSucceeded).
			Return(true, nil).Once()
		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(450)).
			Return(userWithCredits(t, 1, 480), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.Amount == 450 && entry.Source == entity.SourcePurchase &&
				entry.RelatedID == "cs_test_abc" && entry.Type == entity.TypePurchased
		})).Return(nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		user, applied, err := service.GrantPurchase(ctx, "cs_test_abc", 1, 400, 50)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, int64(480), user.Credits())
	})

	t.Run("Replay with an existing ledger entry is a no-op", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockTxRepo.EXPECT().ExistsBySourceAndRelatedID(mock.Anything, entity.SourcePurchase, "cs_test_abc").
			Return(true, nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		_, applied, err := service.GrantPurchase(ctx, "cs_test_abc", 1, 400, 50)

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("Already-settled payment skips the grant", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)
		mockPaymentRepo := persistencemocks.NewMockPaymentRepository(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockUow.EXPECT().GetPaymentRepository(mock.Anything).Return(mockPaymentRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockTxRepo.EXPECT().ExistsBySourceAndRelatedID(mock.Anything, entity.SourcePurchase, "cs_test_abc").
			Return(false, nil).Once()
		mockPaymentRepo.EXPECT().UpdateStatus(mock.Anything, "cs_test_abc", entity.PaymentStatusSucceeded).
			Return(false, nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		_, applied, err := service.GrantPurchase(ctx, "cs_test_abc", 1, 400, 50)

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("Missing payment ID is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		_, applied, err := service.GrantPurchase(ctx, "", 1, 400, 50)

		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.False(t, applied)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Pagination defaults are applied", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)

		mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().ListByUser(mock.Anything, uint64(1), 50, 0).
			Return([]entity.CreditTransaction{}, nil).Once()

		service := NewService(mockUow, newTestTimeProvider(t), newTestLogger(t), DefaultConfig())

		entries, err := service.History(ctx, 1, 0, -3)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
