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

// PaymentRepository implements the persistence.PaymentRepository interface using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a payment entity to a database model
func (r *PaymentRepository) entityToModel(payment *entity.Payment) model.Payment {
	return model.Payment{
		ID:                payment.ID,
		UserID:            payment.UserID,
		ProviderPaymentID: payment.ProviderPaymentID,
		PackageID:         payment.PackageID,
		AmountCents:       payment.AmountCents,
		Credits:           payment.Credits,
		BonusCredits:      payment.BonusCredits,
		Status:            string(payment.Status),
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
}

// modelToEntity converts a payment model to an entity
func (r *PaymentRepository) modelToEntity(m *model.Payment) *entity.Payment {
	return &entity.Payment{
		ID:                m.ID,
		UserID:            m.UserID,
		ProviderPaymentID: m.ProviderPaymentID,
		PackageID:         m.PackageID,
		AmountCents:       m.AmountCents,
		Credits:           m.Credits,
		BonusCredits:      m.BonusCredits,
		Status:            entity.PaymentStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// Create saves a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.logger.Debug("Creating payment record", map[string]any{
		"provider_payment_id": payment.ProviderPaymentID,
		"user_id":             payment.UserID,
		"package_id":          payment.PackageID,
	})

	paymentModel := r.entityToModel(payment)

	result := r.db.WithContext(ctx).Create(&paymentModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate payment record", map[string]any{
				"provider_payment_id": payment.ProviderPaymentID,
			})
			return errs.ErrDuplicateTransaction
		}
		r.logger.Error("Failed to create payment record", map[string]any{
			"provider_payment_id": payment.ProviderPaymentID,
			"error":               result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	payment.ID = paymentModel.ID

	r.logger.Info("Payment record created", map[string]any{
		"payment_id":          paymentModel.ID,
		"provider_payment_id": payment.ProviderPaymentID,
	})
	return nil
}

// GetByProviderPaymentID retrieves a payment by the provider's payment identifier
func (r *PaymentRepository) GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (*entity.Payment, error) {
	var paymentModel model.Payment
	result := r.db.WithContext(ctx).
		Where("provider_payment_id = ?", providerPaymentID).
		First(&paymentModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get payment record", map[string]any{
			"provider_payment_id": providerPaymentID,
			"error":               result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&paymentModel), nil
}

// UpdateStatus moves a pending payment to a settled status. The update
// is conditional on the row still being pending, so a replayed webhook
// returns false instead of settling twice.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, providerPaymentID string, status entity.PaymentStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("provider_payment_id = ? AND status = ?", providerPaymentID, string(entity.PaymentStatusPending)).
		Update("status", string(status))

	if result.Error != nil {
		r.logger.Error("Failed to update payment status", map[string]any{
			"provider_payment_id": providerPaymentID,
			"status":              status,
			"error":               result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Payment already settled or missing", map[string]any{
			"provider_payment_id": providerPaymentID,
			"requested_status":    status,
		})
		return false, nil
	}

	r.logger.Info("Payment status updated", map[string]any{
		"provider_payment_id": providerPaymentID,
		"status":              status,
	})
	return true, nil
}

// CreditPackageRepository implements the persistence.CreditPackageRepository interface using GORM
type CreditPackageRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCreditPackageRepository creates a new CreditPackageRepository instance
func NewCreditPackageRepository(db *gorm.DB, logger coreport.Logger) *CreditPackageRepository {
	return &CreditPackageRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves an active credit package by ID
func (r *CreditPackageRepository) GetByID(ctx context.Context, id string) (*entity.CreditPackage, error) {
	var pkgModel model.CreditPackage
	result := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&pkgModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.CreditPackage{
		ID:           pkgModel.ID,
		Name:         pkgModel.Name,
		PriceCents:   pkgModel.PriceCents,
		Credits:      pkgModel.Credits,
		BonusCredits: pkgModel.BonusCredits,
		Active:       pkgModel.Active,
	}, nil
}

// GetAll returns all active credit packages ordered by price
func (r *CreditPackageRepository) GetAll(ctx context.Context) ([]entity.CreditPackage, error) {
	var models []model.CreditPackage
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("price_cents ASC").
		Find(&models)

	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	packages := make([]entity.CreditPackage, 0, len(models))
	for i := range models {
		packages = append(packages, entity.CreditPackage{
			ID:           models[i].ID,
			Name:         models[i].Name,
			PriceCents:   models[i].PriceCents,
			Credits:      models[i].Credits,
			BonusCredits: models[i].BonusCredits,
			Active:       models[i].Active,
		})
	}
	return packages, nil
}
