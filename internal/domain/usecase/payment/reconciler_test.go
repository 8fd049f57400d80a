package payment

import (
	"context"
	"testing"
	"time"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	"github.com/sketchmotion/credit-engine/internal/domain/port/billing"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	billingmocks "github.com/sketchmotion/credit-engine/mocks/port/billing"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	persistencemocks "github.com/sketchmotion/credit-engine/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	service     *Service
	paymentRepo *persistencemocks.MockPaymentRepository
	packageRepo *persistencemocks.MockCreditPackageRepository
	checkout    *billingmocks.MockCheckoutProvider
	uow         *persistencemocks.MockUnitOfWork
	timeMock    *coremocks.MockTimeProvider
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	paymentRepo := persistencemocks.NewMockPaymentRepository(t)
	packageRepo := persistencemocks.NewMockCreditPackageRepository(t)
	checkout := billingmocks.NewMockCheckoutProvider(t)
	uow := persistencemocks.NewMockUnitOfWork(t)

	ledgerService := ledger.NewService(uow, mockTime, mockLogger, ledger.DefaultConfig())

	return &paymentFixture{
		service:     NewService(ledgerService, paymentRepo, packageRepo, checkout, mockTime, mockLogger),
		paymentRepo: paymentRepo,
		packageRepo: packageRepo,
		checkout:    checkout,
		uow:         uow,
		timeMock:    mockTime,
	}
}

func starterPackage() *entity.CreditPackage {
	return &entity.CreditPackage{
		ID:           "starter",
		Name:         "Starter Pack",
		PriceCents:   499,
		Credits:      400,
		BonusCredits: 50,
		Active:       true,
	}
}

func paymentUser(t *testing.T, id uint64, credits int64) *entity.User {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()
	user, err := entity.NewUser(id, "", mockTime)
	require.NoError(t, err)
	user.SetCredits(credits, mockTime)
	return user
}

func TestCreateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Session is opened and the pending payment recorded", func(t *testing.T) {
		f := newPaymentFixture(t)
		pkg := starterPackage()

		f.packageRepo.EXPECT().GetByID(mock.Anything, "starter").Return(pkg, nil).Once()
		f.checkout.EXPECT().CreateSession(mock.Anything, uint64(1), *pkg).
			Return(&billing.CheckoutSession{ProviderPaymentID: "pi_123", URL: "https://pay.example.com/s/1"}, nil).Once()
		f.paymentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.UserID == 1 &&
				p.ProviderPaymentID == "pi_123" &&
				p.PackageID == "starter" &&
				p.Credits == 400 &&
				p.BonusCredits == 50 &&
				p.Status == entity.PaymentStatusPending
		})).Return(nil).Once()

		session, err := f.service.CreateCheckout(ctx, 1, "starter")

		require.NoError(t, err)
		assert.Equal(t, "pi_123", session.ProviderPaymentID)
		assert.Equal(t, "https://pay.example.com/s/1", session.URL)
	})

	t.Run("Unknown package is rejected before any session", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.packageRepo.EXPECT().GetByID(mock.Anything, "missing").
			Return(nil, errs.ErrNotFound).Once()

		session, err := f.service.CreateCheckout(ctx, 1, "missing")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Zero user ID is rejected", func(t *testing.T) {
		f := newPaymentFixture(t)

		session, err := f.service.CreateCheckout(ctx, 0, "starter")

		assert.Nil(t, session)
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})
}

func TestHandleEventSucceeded(t *testing.T) {
	ctx := context.Background()

	succeededEvent := Event{
		Type:              EventSucceeded,
		ProviderPaymentID: "pi_123",
	}

	storedPayment := func(t *testing.T, f *paymentFixture) *entity.Payment {
		record, err := entity.NewPayment(1, "pi_123", "starter", 499, 400, 50, f.timeMock)
		require.NoError(t, err)
		return record
	}

	t.Run("First delivery settles the payment and grants the credits", func(t *testing.T) {
		f := newPaymentFixture(t)
		record := storedPayment(t, f)

		f.paymentRepo.EXPECT().GetByProviderPaymentID(mock.Anything, "pi_123").
			Return(record, nil).Once()

		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Times(2)
		mockTxRepo.EXPECT().ExistsBySourceAndRelatedID(mock.Anything, entity.SourcePurchase, "pi_123").
			Return(false, nil).Once()
		f.uow.EXPECT().GetPaymentRepository(mock.Anything).Return(f.paymentRepo).Once()
		f.paymentRepo.EXPECT().UpdateStatus(mock.Anything, "pi_123", entity.PaymentStatusSucceeded).
			Return(true, nil).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(1), int64(450)).
			Return(paymentUser(t, 1, 450), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *entity.CreditTransaction) bool {
			return entry.UserID == 1 &&
				entry.Amount == 450 &&
				entry.Source == entity.SourcePurchase &&
				entry.RelatedID == "pi_123"
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		err := f.service.HandleEvent(ctx, succeededEvent)

		require.NoError(t, err)
	})

	t.Run("Replayed delivery is acknowledged without a second grant", func(t *testing.T) {
		f := newPaymentFixture(t)
		record := storedPayment(t, f)

		f.paymentRepo.EXPECT().GetByProviderPaymentID(mock.Anything, "pi_123").
			Return(record, nil).Once()

		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Once()
		mockTxRepo.EXPECT().ExistsBySourceAndRelatedID(mock.Anything, entity.SourcePurchase, "pi_123").
			Return(true, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := f.service.HandleEvent(ctx, succeededEvent)

		require.NoError(t, err)
	})

	t.Run("Missing record is reconstructed from event metadata", func(t *testing.T) {
		f := newPaymentFixture(t)

		event := Event{
			Type:              EventSucceeded,
			ProviderPaymentID: "pi_456",
			UserID:            2,
			PackageID:         "starter",
			Credits:           400,
			BonusCredits:      50,
			AmountCents:       499,
		}

		f.paymentRepo.EXPECT().GetByProviderPaymentID(mock.Anything, "pi_456").
			Return(nil, errs.ErrPaymentNotFound).Once()
		f.paymentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.UserID == 2 && p.ProviderPaymentID == "pi_456" && p.Credits == 400
		})).Return(nil).Once()

		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTxRepo := persistencemocks.NewMockCreditTransactionRepository(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockTxRepo).Times(2)
		mockTxRepo.EXPECT().ExistsBySourceAndRelatedID(mock.Anything, entity.SourcePurchase, "pi_456").
			Return(false, nil).Once()
		f.uow.EXPECT().GetPaymentRepository(mock.Anything).Return(f.paymentRepo).Once()
		f.paymentRepo.EXPECT().UpdateStatus(mock.Anything, "pi_456", entity.PaymentStatusSucceeded).
			Return(true, nil).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().AdjustBalance(mock.Anything, uint64(2), int64(450)).
			Return(paymentUser(t, 2, 450), nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		err := f.service.HandleEvent(ctx, event)

		require.NoError(t, err)
	})

	t.Run("Missing record without metadata stays unacknowledged", func(t *testing.T) {
		f := newPaymentFixture(t)

		event := Event{
			Type:              EventSucceeded,
			ProviderPaymentID: "pi_789",
		}

		f.paymentRepo.EXPECT().GetByProviderPaymentID(mock.Anything, "pi_789").
			Return(nil, errs.ErrPaymentNotFound).Once()

		err := f.service.HandleEvent(ctx, event)

		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})

	t.Run("Empty payment ID is rejected", func(t *testing.T) {
		f := newPaymentFixture(t)

		err := f.service.HandleEvent(ctx, Event{Type: EventSucceeded})

		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestHandleEventSettlements(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed event moves the status and never grants", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.paymentRepo.EXPECT().UpdateStatus(mock.Anything, "pi_123", entity.PaymentStatusFailed).
			Return(true, nil).Once()

		err := f.service.HandleEvent(ctx, Event{Type: EventFailed, ProviderPaymentID: "pi_123"})

		require.NoError(t, err)
	})

	t.Run("Canceled event for an already settled payment is a no-op", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.paymentRepo.EXPECT().UpdateStatus(mock.Anything, "pi_123", entity.PaymentStatusCanceled).
			Return(false, nil).Once()

		err := f.service.HandleEvent(ctx, Event{Type: EventCanceled, ProviderPaymentID: "pi_123"})

		require.NoError(t, err)
	})

	t.Run("Settlement for an unknown payment is acknowledged", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.paymentRepo.EXPECT().UpdateStatus(mock.Anything, "pi_404", entity.PaymentStatusFailed).
			Return(false, errs.ErrPaymentNotFound).Once()

		err := f.service.HandleEvent(ctx, Event{Type: EventFailed, ProviderPaymentID: "pi_404"})

		require.NoError(t, err)
	})

	t.Run("Unknown event type is ignored", func(t *testing.T) {
		f := newPaymentFixture(t)

		err := f.service.HandleEvent(ctx, Event{Type: "refund.updated", ProviderPaymentID: "pi_123"})

		require.NoError(t, err)
	})
}

func TestListPackages(t *testing.T) {
	f := newPaymentFixture(t)

	catalogue := []entity.CreditPackage{*starterPackage()}
	f.packageRepo.EXPECT().GetAll(mock.Anything).Return(catalogue, nil).Once()

	packages, err := f.service.ListPackages(context.Background())

	require.NoError(t, err)
	assert.Len(t, packages, 1)
	assert.Equal(t, "starter", packages[0].ID)
}
