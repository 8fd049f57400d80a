package referral

import (
	"context"
	"errors"
	"strings"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/port/persistence"
)

// Config holds the referral bonus amounts
type Config struct {
	SignupReferrerBonus int64 // Granted to the referrer when the referee signs up
	SignupRefereeBonus  int64 // Granted to the referee when they sign up with a code
	FirstVideoBonus     int64 // Granted to the referrer on the referee's first completed video
}

// DefaultConfig returns the default referral bonus amounts
func DefaultConfig() Config {
	return Config{
		SignupReferrerBonus: 20,
		SignupRefereeBonus:  10,
		FirstVideoBonus:     50,
	}
}

// Service awards the referral bonus cascade exactly once per relationship.
// Each award runs in one database transaction: the one-shot flag flip and
// the credit grants commit together, so a crash or a lost race can never
// split them.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// NewService creates a new referral service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// ProcessSignup resolves the referral code and, if valid, creates the
// relationship and grants the signup bonuses to both sides. Unknown codes
// are a no-op. Calling it twice for the same pair awards nothing twice:
// the conditional flip of signup_bonus_awarded picks a single winner.
func (s *Service) ProcessSignup(ctx context.Context, referralCode string, newUserID uint64) error {
	code := strings.TrimSpace(referralCode)
	if code == "" {
		return nil
	}
	if newUserID == 0 {
		return errs.ErrInvalidUserID
	}

	referrer, err := s.uow.GetUserRepository(ctx).GetByReferralCode(ctx, code)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			s.logger.Debug("Referral code does not resolve, skipping", map[string]any{
				"code":        code,
				"new_user_id": newUserID,
			})
			return nil
		}
		return err
	}
	if referrer.ID == newUserID {
		// Self-referral, nothing to award.
		return nil
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	referralRepo := s.uow.GetReferralRepository(txCtx)

	rel, err := entity.NewReferral(referrer.ID, newUserID, code, s.timeProvider)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if err := referralRepo.Create(txCtx, rel); err != nil && !errs.IsConflictError(err) &&
		!errsIsConstraint(err) {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	won, err := referralRepo.MarkSignupBonusAwarded(txCtx, referrer.ID, newUserID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if !won {
		_ = s.uow.Rollback(txCtx)
		s.logger.Debug("Signup bonus already awarded for pair", map[string]any{
			"referrer_id":      referrer.ID,
			"referred_user_id": newUserID,
		})
		return nil
	}

	if err := s.grant(txCtx, referrer.ID, s.config.SignupReferrerBonus, entity.SourceReferral, code); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if err := s.grant(txCtx, newUserID, s.config.SignupRefereeBonus, entity.SourceReferralSignup, code); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Referral signup bonuses awarded", map[string]any{
		"referrer_id":      referrer.ID,
		"referred_user_id": newUserID,
		"referrer_bonus":   s.config.SignupReferrerBonus,
		"referee_bonus":    s.config.SignupRefereeBonus,
	})
	return nil
}

// ProcessFirstGeneration flips the user's one-way first-video flag and,
// when the user was referred, awards the referrer the first-video bonus.
// Both flips are conditional writes, so concurrent or retried calls award
// at most once. relatedID ties the bonus entry to the completed job.
func (s *Service) ProcessFirstGeneration(ctx context.Context, userID uint64, relatedID string) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	userRepo := s.uow.GetUserRepository(txCtx)
	won, err := userRepo.MarkFirstVideoGenerated(txCtx, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if !won {
		_ = s.uow.Rollback(txCtx)
		return nil
	}

	referralRepo := s.uow.GetReferralRepository(txCtx)
	rel, err := referralRepo.GetByReferredUser(txCtx, userID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			// Not a referred user, just persist the flag flip.
			return s.uow.Commit(txCtx)
		}
		_ = s.uow.Rollback(txCtx)
		return err
	}

	bonusWon, err := referralRepo.MarkFirstVideoBonusAwarded(txCtx, rel.ReferrerID, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if !bonusWon {
		return s.uow.Commit(txCtx)
	}

	if err := s.grant(txCtx, rel.ReferrerID, s.config.FirstVideoBonus, entity.SourceReferralFirstVideo, relatedID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Referral first-video bonus awarded", map[string]any{
		"referrer_id":      rel.ReferrerID,
		"referred_user_id": userID,
		"bonus":            s.config.FirstVideoBonus,
		"related_id":       relatedID,
	})
	return nil
}

// grant applies one in-transaction balance increase plus its ledger entry.
// A zero-configured bonus is a no-op.
func (s *Service) grant(txCtx context.Context, userID uint64, amount int64, source entity.SourceType, relatedID string) error {
	if amount <= 0 {
		return nil
	}
	user, err := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, amount)
	if err != nil {
		return err
	}
	entry, err := entity.NewCreditTransaction(userID, amount, source, relatedID, s.timeProvider)
	if err != nil {
		return err
	}
	entry.ResultBalance = user.Credits()
	return s.uow.GetCreditTransactionRepository(txCtx).Create(txCtx, entry)
}

// errsIsConstraint reports whether the error is a unique-pair violation,
// which here just means the relationship row already exists
func errsIsConstraint(err error) bool {
	return errors.Is(err, errs.ErrConstraintViolation) ||
		errors.Is(err, errs.ErrDuplicateTransaction) ||
		errors.Is(err, errs.ErrDuplicateUser)
}
