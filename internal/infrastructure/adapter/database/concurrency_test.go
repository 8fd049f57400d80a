package database

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	"github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/repository"
)

// These tests need a running postgres instance. They are gated on
// TEST_DB_HOST so the rest of the suite stays database-free.
func requireTestDB(t *testing.T) *TestDBManager {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database tests")
	}

	tdb := NewTestDBManager(t, nil)
	require.NoError(t, tdb.Connect(t))
	t.Cleanup(func() { tdb.Close(t) })
	tdb.SetupTestDB(t)
	return tdb
}

func newDBLedgerService(tdb *TestDBManager) *ledger.Service {
	uow := NewUnitOfWork(tdb.Manager.DB(), tdb.Logger, tdb.TimeProvider)
	return ledger.NewService(uow, tdb.TimeProvider, tdb.Logger, ledger.Config{
		CheckInBonus:   5,
		MaxRetries:     10,
		RetryBaseDelay: 10 * time.Millisecond,
	})
}

func TestConcurrentSpends(t *testing.T) {
	tdb := requireTestDB(t)
	service := newDBLedgerService(tdb)
	ctx := context.Background()

	const (
		userID  = uint64(1)
		funding = int64(250)
		cost    = int64(60)
		workers = 8
	)

	tdb.CreateTestUser(t, userID, 0)
	_, err := service.Earn(ctx, userID, funding, entity.SourceAdminAward, "")
	require.NoError(t, err)

	var succeeded, rejected atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := service.Spend(ctx, userID, cost, entity.SourceVideoGeneration, fmt.Sprintf("job-%d", n))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errs.IsInsufficientCreditsError(err):
				rejected.Add(1)
			default:
				t.Errorf("unexpected spend error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	// 250 credits fund exactly 4 spends of 60; the rest must bounce
	assert.Equal(t, int32(4), succeeded.Load())
	assert.Equal(t, int32(workers-4), rejected.Load())

	balance, err := service.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, funding-4*cost, balance)

	// Every applied delta carries its entry, so the entries sum back to
	// the stored balance
	entryRepo := repository.NewCreditTransactionRepository(tdb.Manager.DB(), tdb.Logger)
	sum, err := entryRepo.SumByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, balance, sum)

	entries, err := entryRepo.ListByUser(ctx, userID, 100, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestConcurrentCheckIns(t *testing.T) {
	tdb := requireTestDB(t)
	service := newDBLedgerService(tdb)
	ctx := context.Background()

	const userID = uint64(2)
	tdb.CreateTestUser(t, userID, 0)

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.DailyCheckIn(ctx, userID)
			switch {
			case err == nil:
				granted.Add(1)
			case errs.IsCheckInNotAvailableError(err):
			default:
				t.Errorf("unexpected check-in error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), granted.Load())

	balance, err := service.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, service.CheckInBonus(), balance)
}
