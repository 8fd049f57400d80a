package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sketchmotion/credit-engine/internal/domain/port/persistence"
)

// The usecases and the UnitOfWork hand these out as their ports, so a
// signature drift is a wiring break, not just a style problem.
var (
	_ persistence.UserRepository              = (*UserRepository)(nil)
	_ persistence.CreditTransactionRepository = (*CreditTransactionRepository)(nil)
	_ persistence.GenerationJobRepository     = (*GenerationJobRepository)(nil)
	_ persistence.PaymentRepository           = (*PaymentRepository)(nil)
	_ persistence.CreditPackageRepository     = (*CreditPackageRepository)(nil)
	_ persistence.ReferralRepository          = (*ReferralRepository)(nil)
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Duplicate key violations", func(t *testing.T) {
		assert.True(t, classifier.IsDuplicateKeyError(errors.New(`duplicate key value violates unique constraint "idx_source_related"`)))
		assert.True(t, classifier.IsDuplicateKeyError(errors.New("ERROR: duplicate key value (SQLSTATE 23505)")))
		assert.False(t, classifier.IsDuplicateKeyError(errors.New("connection refused")))
		assert.False(t, classifier.IsDuplicateKeyError(nil))
	})

	t.Run("Serialization failures are lock errors", func(t *testing.T) {
		assert.True(t, classifier.IsLockError(errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")))
		assert.True(t, classifier.IsLockError(errors.New("deadlock detected")))
		assert.False(t, classifier.IsLockError(errors.New("duplicate key value")))
	})

	t.Run("Classify picks the most specific type", func(t *testing.T) {
		assert.Equal(t, DuplicateKeyError, classifier.Classify(errors.New("duplicate key value violates unique constraint")))
		assert.Equal(t, LockError, classifier.Classify(errors.New("could not serialize access")))
		assert.Equal(t, TransientError, classifier.Classify(errors.New("read tcp: connection reset by peer")))
		assert.Equal(t, ErrorType(""), classifier.Classify(nil))
	})
}
