package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/port/persistence"
)

// Config holds the ledger's policy knobs
type Config struct {
	CheckInBonus   int64         // Credits granted per daily check-in
	MaxRetries     int           // Attempts for lost conditional-write races
	RetryBaseDelay time.Duration // Base delay for the backoff between attempts
}

// DefaultConfig returns the default ledger configuration
func DefaultConfig() Config {
	return Config{
		CheckInBonus:   5,
		MaxRetries:     3,
		RetryBaseDelay: 50 * time.Millisecond,
	}
}

// Service is the single mutation path for user credit balances. Every
// operation pairs the atomic balance change with its append-only ledger
// entry inside one database transaction, so the balance always equals the
// running sum of the entries.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// NewService creates a new ledger service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultConfig().MaxRetries
	}
	if config.RetryBaseDelay <= 0 {
		config.RetryBaseDelay = DefaultConfig().RetryBaseDelay
	}
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Earn appends a positive ledger entry and increments the balance
func (s *Service) Earn(ctx context.Context, userID uint64, amount int64, source entity.SourceType, relatedID string) (*entity.User, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	return s.applyDelta(ctx, userID, amount, source, relatedID)
}

// Spend appends a negative ledger entry and decrements the balance.
// The decrement is a single atomic conditional write; a debit that would
// drive the balance below zero fails with InsufficientCreditsError.
func (s *Service) Spend(ctx context.Context, userID uint64, amount int64, source entity.SourceType, relatedID string) (*entity.User, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	return s.applyDelta(ctx, userID, -amount, source, relatedID)
}

// DailyCheckIn grants the fixed check-in bonus if the 24h window has
// elapsed. The eligibility check, the timestamp update and the credit
// grant are one atomic unit.
func (s *Service) DailyCheckIn(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	var user *entity.User
	err := s.withRetries(ctx, func() error {
		txCtx, err := s.uow.Begin(ctx)
		if err != nil {
			return err
		}

		userRepo := s.uow.GetUserRepository(txCtx)
		checked, err := userRepo.ApplyCheckIn(txCtx, userID, s.config.CheckInBonus)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}

		if err := s.appendEntry(txCtx, checked, s.config.CheckInBonus, entity.SourceCheckin, ""); err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}

		if err := s.uow.Commit(txCtx); err != nil {
			return err
		}
		user = checked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Daily check-in granted", map[string]any{
		"user_id":     userID,
		"bonus":       s.config.CheckInBonus,
		"new_balance": user.Credits(),
	})
	return user, nil
}

// GrantPurchase applies a successful payment exactly once, keyed by the
// provider payment ID: it marks the payment succeeded, grants
// credits+bonusCredits and appends the purchase entry in one atomic batch.
// Replays return applied=false without touching the balance.
func (s *Service) GrantPurchase(ctx context.Context, providerPaymentID string, userID uint64, credits, bonusCredits int64) (*entity.User, bool, error) {
	if userID == 0 {
		return nil, false, errs.ErrInvalidUserID
	}
	if credits <= 0 || bonusCredits < 0 {
		return nil, false, errs.ErrInvalidAmount
	}
	if providerPaymentID == "" {
		return nil, false, fmt.Errorf("%w: provider payment ID is required", errs.ErrInvalidArgument)
	}

	total := credits + bonusCredits

	var user *entity.User
	applied := false
	err := s.withRetries(ctx, func() error {
		txCtx, err := s.uow.Begin(ctx)
		if err != nil {
			return err
		}

		// Idempotency pre-check: one purchase entry per payment ID. The
		// unique index on (source, related_id) is the backstop for the
		// window between check and insert.
		txRepo := s.uow.GetCreditTransactionRepository(txCtx)
		exists, err := txRepo.ExistsBySourceAndRelatedID(txCtx, entity.SourcePurchase, providerPaymentID)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}
		if exists {
			_ = s.uow.Rollback(txCtx)
			s.logger.Warn("Purchase grant replayed, skipping", map[string]any{
				"user_id":    userID,
				"payment_id": providerPaymentID,
			})
			return nil
		}

		paymentRepo := s.uow.GetPaymentRepository(txCtx)
		moved, err := paymentRepo.UpdateStatus(txCtx, providerPaymentID, entity.PaymentStatusSucceeded)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}
		if !moved {
			_ = s.uow.Rollback(txCtx)
			s.logger.Warn("Payment already settled, skipping grant", map[string]any{
				"payment_id": providerPaymentID,
			})
			return nil
		}

		userRepo := s.uow.GetUserRepository(txCtx)
		granted, err := userRepo.AdjustBalance(txCtx, userID, total)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}

		if err := s.appendEntry(txCtx, granted, total, entity.SourcePurchase, providerPaymentID); err != nil {
			_ = s.uow.Rollback(txCtx)
			if errs.IsDuplicateTransactionError(err) {
				// Lost the idempotency race to a concurrent delivery.
				return nil
			}
			return err
		}

		if err := s.uow.Commit(txCtx); err != nil {
			return err
		}
		user = granted
		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if applied {
		s.logger.Info("Purchase credits granted", map[string]any{
			"user_id":       userID,
			"payment_id":    providerPaymentID,
			"credits":       credits,
			"bonus_credits": bonusCredits,
			"new_balance":   user.Credits(),
		})
	}
	return user, applied, nil
}

// CheckInBonus returns the configured daily check-in grant
func (s *Service) CheckInBonus() int64 {
	return s.config.CheckInBonus
}

// GetBalance returns the user's current credit balance
func (s *Service) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Credits(), nil
}

// History returns a page of the user's ledger entries, newest first
func (s *Service) History(ctx context.Context, userID uint64, limit, offset int) ([]entity.CreditTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.uow.GetCreditTransactionRepository(ctx).ListByUser(ctx, userID, limit, offset)
}

// applyDelta runs one balance change plus its ledger entry in a single
// transaction, retrying lost lock races a bounded number of times
func (s *Service) applyDelta(ctx context.Context, userID uint64, delta int64, source entity.SourceType, relatedID string) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	var user *entity.User
	err := s.withRetries(ctx, func() error {
		txCtx, err := s.uow.Begin(ctx)
		if err != nil {
			return err
		}

		userRepo := s.uow.GetUserRepository(txCtx)
		adjusted, err := userRepo.AdjustBalance(txCtx, userID, delta)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}

		if err := s.appendEntry(txCtx, adjusted, delta, source, relatedID); err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}

		if err := s.uow.Commit(txCtx); err != nil {
			return err
		}
		user = adjusted
		return nil
	})
	if err != nil {
		if errs.IsInsufficientCreditsError(err) || errs.IsUserNotFoundError(err) {
			return nil, err
		}
		return nil, errs.NewLedgerError(userID, delta, string(source), err)
	}

	s.logger.Info("Ledger entry applied", map[string]any{
		"user_id":     userID,
		"amount":      delta,
		"source":      string(source),
		"related_id":  relatedID,
		"new_balance": user.Credits(),
	})
	return user, nil
}

// appendEntry records the ledger row for a balance change already applied
// in the same transaction
func (s *Service) appendEntry(txCtx context.Context, user *entity.User, delta int64, source entity.SourceType, relatedID string) error {
	entry, err := entity.NewCreditTransaction(user.ID, delta, source, relatedID, s.timeProvider)
	if err != nil {
		return err
	}
	entry.ResultBalance = user.Credits()
	return s.uow.GetCreditTransactionRepository(txCtx).Create(txCtx, entry)
}

// withRetries retries the operation on lost conditional-write races with
// a doubling backoff. Business-rule failures surface immediately.
func (s *Service) withRetries(ctx context.Context, operation func() error) error {
	var err error
	delay := s.config.RetryBaseDelay

	for attempt := 0; attempt < s.config.MaxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Warn("Retrying ledger operation after lost race", map[string]any{
				"attempt":     attempt + 1,
				"max_retries": s.config.MaxRetries,
				"delay_ms":    delay.Milliseconds(),
			})
			if sleepErr := s.timeProvider.SleepContext(ctx, coreport.Duration(delay)); sleepErr != nil {
				return sleepErr
			}
			delay *= 2
		}

		err = operation()
		if err == nil {
			return nil
		}
		if !errs.IsConflictError(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	s.logger.Error("Ledger operation exhausted conflict retries", map[string]any{
		"max_retries": s.config.MaxRetries,
		"error":       err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}
