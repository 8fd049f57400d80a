package persistence

import (
	"context"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
)

// CreditTransactionRepository stores the append-only ledger entries
type CreditTransactionRepository interface {
	// Create appends a new ledger entry
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If a purchase entry for the same related ID exists
	// - ErrUserNotFound: If the referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.CreditTransaction) error

	// ExistsBySourceAndRelatedID checks whether an entry with the given
	// source and related ID was already recorded. Used for idempotency
	// checking before applying payment grants.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ExistsBySourceAndRelatedID(ctx context.Context, source entity.SourceType, relatedID string) (bool, error)

	// ListByUser returns a page of a user's ledger entries, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]entity.CreditTransaction, error)

	// SumByUser returns the running sum of a user's signed amounts. The
	// result must always equal the user's stored balance.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	SumByUser(ctx context.Context, userID uint64) (int64, error)
}
