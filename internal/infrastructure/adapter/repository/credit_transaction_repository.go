package repository

import (
	"context"
	"fmt"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CreditTransactionRepository implements the persistence.CreditTransactionRepository interface using GORM
type CreditTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCreditTransactionRepository creates a new CreditTransactionRepository instance
func NewCreditTransactionRepository(db *gorm.DB, logger coreport.Logger) *CreditTransactionRepository {
	return &CreditTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a ledger entry entity to a database model
func (r *CreditTransactionRepository) entityToModel(entry *entity.CreditTransaction) model.CreditTransaction {
	return model.CreditTransaction{
		UserID:        entry.UserID,
		Amount:        entry.Amount,
		Type:          string(entry.Type),
		SourceType:    string(entry.Source),
		RelatedID:     entry.RelatedID,
		ResultBalance: entry.ResultBalance,
		CreatedAt:     entry.CreatedAt,
	}
}

// modelToEntity converts a ledger entry model to an entity
func (r *CreditTransactionRepository) modelToEntity(m *model.CreditTransaction) *entity.CreditTransaction {
	return &entity.CreditTransaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Type:          entity.TransactionType(m.Type),
		Source:        entity.SourceType(m.SourceType),
		RelatedID:     m.RelatedID,
		ResultBalance: m.ResultBalance,
		CreatedAt:     m.CreatedAt,
	}
}

// Create saves a new ledger entry
func (r *CreditTransactionRepository) Create(ctx context.Context, entry *entity.CreditTransaction) error {
	r.logger.Debug("Creating ledger entry", map[string]any{
		"user_id":    entry.UserID,
		"amount":     entry.Amount,
		"source":     entry.Source,
		"related_id": entry.RelatedID,
	})

	entryModel := r.entityToModel(entry)

	result := r.db.WithContext(ctx).Create(&entryModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate ledger entry detected", map[string]any{
				"user_id":    entry.UserID,
				"source":     entry.Source,
				"related_id": entry.RelatedID,
			})
			return errs.ErrDuplicateTransaction
		}

		r.logger.Error("Failed to create ledger entry", map[string]any{
			"user_id": entry.UserID,
			"source":  entry.Source,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entry.ID = entryModel.ID

	r.logger.Debug("Ledger entry created", map[string]any{
		"entry_id": entryModel.ID,
		"user_id":  entry.UserID,
		"amount":   entry.Amount,
	})
	return nil
}

// ExistsBySourceAndRelatedID checks whether an entry for the given source
// and related id has already been booked
func (r *CreditTransactionRepository) ExistsBySourceAndRelatedID(ctx context.Context, source entity.SourceType, relatedID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Where("source_type = ? AND related_id = ?", string(source), relatedID).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to check ledger entry existence", map[string]any{
			"source":     source,
			"related_id": relatedID,
			"error":      result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count > 0, nil
}

// ListByUser returns the user's ledger entries newest first
func (r *CreditTransactionRepository) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]entity.CreditTransaction, error) {
	var models []model.CreditTransaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]entity.CreditTransaction, 0, len(models))
	for i := range models {
		entries = append(entries, *r.modelToEntity(&models[i]))
	}
	return entries, nil
}

// SumByUser returns the signed sum of the user's ledger entries. The
// result must always equal the stored balance; a mismatch means a grant
// and its entry were split across transactions somewhere.
func (r *CreditTransactionRepository) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var sum struct {
		Total int64
	}
	result := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&sum)

	if result.Error != nil {
		r.logger.Error("Failed to sum ledger entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return sum.Total, nil
}
