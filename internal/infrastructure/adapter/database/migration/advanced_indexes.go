package migration

import (
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Partial unique index backing purchase idempotency: a replayed
	// provider payment id can never book a second purchase entry.
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_credit_transactions_purchase_related
		ON credit_transactions (source_type, related_id)
		WHERE source_type = 'purchase'
	`).Error; err != nil {
		m.logger.Error("Failed to create purchase idempotency index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index for history listings ordered by recency
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_credit_transactions_user_created
		ON credit_transactions (user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create user_created composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index for live jobs that pollers keep re-reading
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_generation_jobs_live
		ON generation_jobs (user_id, updated_at)
		WHERE status IN ('pending', 'processing')
	`).Error; err != nil {
		m.logger.Error("Failed to create live jobs partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Provider correlation lookups during status refreshes
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_generation_jobs_provider_job_id
		ON generation_jobs (provider_job_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create provider_job_id index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_credit_transactions_created_at_brin
		ON credit_transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Pending payments scanned by reconciliation
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payments_pending
		ON payments (created_at)
		WHERE status = 'pending'
	`).Error; err != nil {
		m.logger.Error("Failed to create pending payments partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Set fillfactor for the ledger table to reduce page splits
	if err := m.db.Exec(`
		ALTER TABLE credit_transactions SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for credit_transactions table", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	// Set statistics target for better query planning
	if err := m.db.Exec(`
		ALTER TABLE credit_transactions ALTER COLUMN user_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
