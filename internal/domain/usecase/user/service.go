package user

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/domain/port/persistence"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/referral"
)

// Service handles user onboarding into the credit economy. Account
// identity itself comes from the out-of-scope auth layer; this service
// creates the ledger-side user row, grants the standalone signup bonus
// and kicks off the referral cascade when a code was supplied.
type Service struct {
	userRepo     persistence.UserRepository
	ledger       *ledger.Service
	referral     *referral.Service
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	signupBonus  int64
}

// NewService creates a new user service
func NewService(
	userRepo persistence.UserRepository,
	ledgerService *ledger.Service,
	referralService *referral.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	signupBonus int64,
) *Service {
	return &Service{
		userRepo:     userRepo,
		ledger:       ledgerService,
		referral:     referralService,
		timeProvider: timeProvider,
		logger:       logger,
		signupBonus:  signupBonus,
	}
}

// Register creates the user with a fresh referral code, grants the signup
// bonus and processes the referral relationship if referredBy resolves.
// An unknown referral code still leaves the user with the plain signup
// bonus.
func (s *Service) Register(ctx context.Context, userID uint64, referredBy string) (*entity.User, error) {
	user, err := entity.NewUser(userID, referredBy, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.signupBonus > 0 {
		if _, err := s.ledger.Earn(ctx, userID, s.signupBonus, entity.SourceSignup, ""); err != nil {
			return nil, err
		}
	}

	if referredBy != "" {
		if err := s.referral.ProcessSignup(ctx, referredBy, userID); err != nil {
			return nil, err
		}
	}

	// Re-read so the caller sees the balance with all bonuses settled.
	user, err = s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":       userID,
		"referral_code": user.ReferralCode,
		"referred_by":   user.ReferredBy,
		"credits":       user.Credits(),
	})
	return user, nil
}

// Get returns the user's credit-economy profile
func (s *Service) Get(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.userRepo.GetByID(ctx, userID)
}

// Exists checks if a user with the given ID exists
func (s *Service) Exists(ctx context.Context, userID uint64) (bool, error) {
	_, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
