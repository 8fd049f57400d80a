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
	"gorm.io/gorm/clause"
)

// getOperationType returns "credit" for positive or zero changes and "debit" for negative changes
func getOperationType(delta int64) string {
	if delta >= 0 {
		return "credit"
	}
	return "debit"
}

// UserRepository implements the persistence.UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:                    userModel.ID,
		ReferralCode:          userModel.ReferralCode,
		ReferredBy:            userModel.ReferredBy,
		IsFirstVideoGenerated: userModel.IsFirstVideoGenerated,
		LastCheckinAt:         userModel.LastCheckinAt,
		CreatedAt:             userModel.CreatedAt,
	}
	user.SetCredits(userModel.Credits, r.timeProvider)
	// SetCredits stamps UpdatedAt; restore the persisted value.
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id": userID,
		})
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("User row is locked by another transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return errs.ErrConflict
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByReferralCode retrieves a user by their referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user by referral code", result.Error, 0)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":       user.ID,
		"referral_code": user.ReferralCode,
	})

	userModel := model.User{
		ID:                    user.ID,
		Credits:               user.Credits(),
		ReferralCode:          user.ReferralCode,
		ReferredBy:            user.ReferredBy,
		IsFirstVideoGenerated: user.IsFirstVideoGenerated,
		LastCheckinAt:         user.LastCheckinAt,
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":       user.ID,
		"referral_code": user.ReferralCode,
	})
	return nil
}

// AdjustBalance applies a signed credit delta to the user's balance
// atomically. The row is locked with FOR UPDATE, the new balance is
// rejected inside the transaction if it would go negative, and the
// updated user is returned.
func (r *UserRepository) AdjustBalance(ctx context.Context, userID uint64, delta int64) (*entity.User, error) {
	r.logger.Debug("Adjusting balance", map[string]any{
		"user_id":        userID,
		"delta":          delta,
		"operation_type": getOperationType(delta),
	})

	var user *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Take an exclusive row lock so concurrent spends serialize here
		var userModel model.User
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, userID)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				r.logger.Warn("User not found during balance adjustment", map[string]any{
					"user_id": userID,
				})
				return errs.ErrUserNotFound
			}
			r.logger.Error("Database error when locking user", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return result.Error
		}

		newCredits := userModel.Credits + delta

		if newCredits < 0 {
			r.logger.Warn("Insufficient credits for debit", map[string]any{
				"user_id":         userID,
				"current_credits": userModel.Credits,
				"requested_delta": delta,
			})
			return errs.NewInsufficientCreditsError(userID, -delta, userModel.Credits)
		}

		userModel.Credits = newCredits
		userModel.UpdatedAt = r.timeProvider.Now()

		result = tx.Model(&userModel).Updates(map[string]interface{}{
			"credits":    userModel.Credits,
			"updated_at": userModel.UpdatedAt,
		})

		if result.Error != nil {
			r.logger.Error("Failed to update user credits", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return result.Error
		}

		user = r.modelToEntity(&userModel)
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errors.Is(err, errs.ErrInsufficientCredits) {
			// These errors are already logged above
			return nil, err
		}
		if r.errorClassifier.IsLockError(err) {
			r.logger.Warn("User row is locked by another transaction", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			return nil, errs.ErrConflict
		}
		r.logger.Error("Database error during balance adjustment", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Balance adjusted successfully", map[string]any{
		"user_id":        userID,
		"delta":          delta,
		"new_credits":    user.Credits(),
		"operation_type": getOperationType(delta),
	})

	return user, nil
}

// ApplyCheckIn grants the daily check-in bonus atomically. The window
// check runs against the locked row so two concurrent check-ins cannot
// both pass; the loser gets CheckInNotAvailableError.
func (r *UserRepository) ApplyCheckIn(ctx context.Context, userID uint64, bonus int64) (*entity.User, error) {
	var user *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.User
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, userID)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		now := r.timeProvider.Now()
		if userModel.LastCheckinAt != nil && now.Sub(*userModel.LastCheckinAt) < entity.CheckInInterval {
			next := userModel.LastCheckinAt.Add(entity.CheckInInterval)
			r.logger.Debug("Check-in window not yet open", map[string]any{
				"user_id":        userID,
				"next_available": next,
			})
			return errs.NewCheckInNotAvailableError(userID, next)
		}

		userModel.Credits += bonus
		userModel.LastCheckinAt = &now
		userModel.UpdatedAt = now

		result = tx.Model(&userModel).Updates(map[string]interface{}{
			"credits":         userModel.Credits,
			"last_checkin_at": userModel.LastCheckinAt,
			"updated_at":      userModel.UpdatedAt,
		})

		if result.Error != nil {
			return result.Error
		}

		user = r.modelToEntity(&userModel)
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errors.Is(err, errs.ErrCheckInNotAvailable) {
			return nil, err
		}
		if r.errorClassifier.IsLockError(err) {
			return nil, errs.ErrConflict
		}
		r.logger.Error("Database error during check-in", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Check-in applied successfully", map[string]any{
		"user_id":     userID,
		"bonus":       bonus,
		"new_credits": user.Credits(),
	})

	return user, nil
}

// MarkFirstVideoGenerated flips the first-video flag with a conditional
// update. Returns true only for the call that actually flipped it.
func (r *UserRepository) MarkFirstVideoGenerated(ctx context.Context, userID uint64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND is_first_video_generated = ?", userID, false).
		Updates(map[string]interface{}{
			"is_first_video_generated": true,
			"updated_at":               r.timeProvider.Now(),
		})

	if result.Error != nil {
		return false, r.handleDatabaseError("marking first video generated", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		// Flag already set, or user missing; distinguish the two.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return false, r.handleDatabaseError("checking user existence", err, userID)
		}
		if count == 0 {
			return false, errs.ErrUserNotFound
		}
		return false, nil
	}

	r.logger.Info("First video flag set", map[string]any{
		"user_id": userID,
	})
	return true, nil
}
