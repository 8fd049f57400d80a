package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReferralRepository implements the persistence.ReferralRepository interface using GORM
type ReferralRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a referral model to an entity
func (r *ReferralRepository) modelToEntity(m *model.Referral) *entity.Referral {
	return &entity.Referral{
		ID:                     m.ID,
		ReferrerID:             m.ReferrerID,
		ReferredUserID:         m.ReferredUserID,
		CodeUsed:               m.CodeUsed,
		SignupBonusAwarded:     m.SignupBonusAwarded,
		FirstVideoBonusAwarded: m.FirstVideoBonusAwarded,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// Create saves a new referral relationship
func (r *ReferralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	r.logger.Debug("Creating referral", map[string]any{
		"referrer_id":      referral.ReferrerID,
		"referred_user_id": referral.ReferredUserID,
		"code_used":        referral.CodeUsed,
	})

	referralModel := model.Referral{
		ReferrerID:             referral.ReferrerID,
		ReferredUserID:         referral.ReferredUserID,
		CodeUsed:               referral.CodeUsed,
		SignupBonusAwarded:     referral.SignupBonusAwarded,
		FirstVideoBonusAwarded: referral.FirstVideoBonusAwarded,
		CreatedAt:              referral.CreatedAt,
		UpdatedAt:              referral.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&referralModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Referral already recorded for user", map[string]any{
				"referred_user_id": referral.ReferredUserID,
			})
			return errs.ErrConstraintViolation
		}
		r.logger.Error("Failed to create referral", map[string]any{
			"referred_user_id": referral.ReferredUserID,
			"error":            result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	referral.ID = referralModel.ID
	return nil
}

// GetByReferredUser retrieves the referral row for a referred user
func (r *ReferralRepository) GetByReferredUser(ctx context.Context, referredUserID uint64) (*entity.Referral, error) {
	var referralModel model.Referral
	result := r.db.WithContext(ctx).
		Where("referred_user_id = ?", referredUserID).
		First(&referralModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrReferralNotFound
		}
		r.logger.Error("Failed to get referral", map[string]any{
			"referred_user_id": referredUserID,
			"error":            result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&referralModel), nil
}

// MarkSignupBonusAwarded flips the signup award flag conditionally.
// Returns true only for the caller that flipped it.
func (r *ReferralRepository) MarkSignupBonusAwarded(ctx context.Context, referrerID, referredUserID uint64) (bool, error) {
	return r.markFlag(ctx, referrerID, referredUserID, "signup_bonus_awarded")
}

// MarkFirstVideoBonusAwarded flips the first-video award flag conditionally.
// Returns true only for the caller that flipped it.
func (r *ReferralRepository) MarkFirstVideoBonusAwarded(ctx context.Context, referrerID, referredUserID uint64) (bool, error) {
	return r.markFlag(ctx, referrerID, referredUserID, "first_video_bonus_awarded")
}

func (r *ReferralRepository) markFlag(ctx context.Context, referrerID, referredUserID uint64, column string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Referral{}).
		Where("referrer_id = ? AND referred_user_id = ? AND "+column+" = ?", referrerID, referredUserID, false).
		Updates(map[string]interface{}{
			column:       true,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to mark referral bonus", map[string]any{
			"referrer_id":      referrerID,
			"referred_user_id": referredUserID,
			"flag":             column,
			"error":            result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Referral bonus already awarded or row missing", map[string]any{
			"referrer_id":      referrerID,
			"referred_user_id": referredUserID,
			"flag":             column,
		})
		return false, nil
	}

	return true, nil
}
