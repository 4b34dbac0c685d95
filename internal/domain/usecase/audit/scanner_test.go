package audit

import (
	"context"
	"testing"
	"time"

	errs "github.com/votequest/coin-service/internal/domain/error"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
	coremocks "github.com/votequest/coin-service/mocks/port/core"
	persistencemocks "github.com/votequest/coin-service/mocks/port/persistence"
	usecasemocks "github.com/votequest/coin-service/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scannerFixture struct {
	userRepo *persistencemocks.MockUserRepository
	txnRepo  *persistencemocks.MockTransactionRepository
	ledger   *usecasemocks.MockLedgerUseCase
	scanner  *Scanner
}

func newScannerFixture(t *testing.T) *scannerFixture {
	f := &scannerFixture{
		userRepo: persistencemocks.NewMockUserRepository(t),
		txnRepo:  persistencemocks.NewMockTransactionRepository(t),
		ledger:   usecasemocks.NewMockLedgerUseCase(t),
	}

	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC)).Maybe()

	logger := relaxedLogger(t)
	auditor := NewAuditor(f.userRepo, f.txnRepo, logger)
	f.scanner = NewScanner(f.userRepo, auditor, f.ledger, tp, logger)
	return f
}

// expectAudit wires one user's audit round trip
func (f *scannerFixture) expectAudit(t *testing.T, userID uint64, stored, calculated int64) {
	f.userRepo.EXPECT().GetByID(mock.Anything, userID).Return(testUser(t, userID, stored), nil).Once()
	f.txnRepo.EXPECT().SumAmountsByUser(mock.Anything, userID).Return(calculated, int64(1), nil).Once()
}

func TestScan(t *testing.T) {
	ctx := context.Background()

	t.Run("Flags drifted user and corrects it", func(t *testing.T) {
		f := newScannerFixture(t)

		f.userRepo.EXPECT().ListIDs(ctx, uint64(0), 10).Return([]uint64{1, 2, 3}, nil).Once()
		f.expectAudit(t, 1, 100, 100)
		f.expectAudit(t, 2, 500, 50)
		f.expectAudit(t, 3, 0, 0)
		f.ledger.EXPECT().Reconcile(ctx, uint64(2), mock.AnythingOfType("string")).
			Return(nil, nil).Once()

		report, err := f.scanner.Scan(ctx, portuse.ScanOptions{AutoCorrect: true, PageSize: 10})

		require.NoError(t, err)
		assert.NotEmpty(t, report.ScanID)
		assert.Equal(t, 3, report.UsersScanned)
		assert.Equal(t, 1, report.TotalFlagged)
		assert.Equal(t, 1, report.CorrectedCount)
		require.Len(t, report.FlaggedUsers, 1)
		assert.Equal(t, uint64(2), report.FlaggedUsers[0].UserID)
		assert.Equal(t, int64(450), report.FlaggedUsers[0].Discrepancy)
		assert.True(t, report.FlaggedUsers[0].Corrected)
		assert.Empty(t, report.Errors)
	})

	t.Run("Without auto-correct users stay flagged only", func(t *testing.T) {
		f := newScannerFixture(t)

		f.userRepo.EXPECT().ListIDs(ctx, uint64(0), 10).Return([]uint64{2}, nil).Once()
		f.expectAudit(t, 2, 500, 50)

		report, err := f.scanner.Scan(ctx, portuse.ScanOptions{PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, 1, report.TotalFlagged)
		assert.Equal(t, 0, report.CorrectedCount)
		assert.False(t, report.FlaggedUsers[0].Corrected)
		f.ledger.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Keyset pagination walks all pages", func(t *testing.T) {
		f := newScannerFixture(t)

		f.userRepo.EXPECT().ListIDs(ctx, uint64(0), 2).Return([]uint64{1, 2}, nil).Once()
		f.userRepo.EXPECT().ListIDs(ctx, uint64(2), 2).Return([]uint64{5}, nil).Once()
		f.expectAudit(t, 1, 10, 10)
		f.expectAudit(t, 2, 20, 20)
		f.expectAudit(t, 5, 30, 30)

		report, err := f.scanner.Scan(ctx, portuse.ScanOptions{PageSize: 2})

		require.NoError(t, err)
		assert.Equal(t, 3, report.UsersScanned)
		assert.Equal(t, 0, report.TotalFlagged)
	})

	t.Run("Single user failure is recorded and skipped", func(t *testing.T) {
		f := newScannerFixture(t)

		f.userRepo.EXPECT().ListIDs(ctx, uint64(0), 10).Return([]uint64{1, 2}, nil).Once()
		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(nil, errs.ErrDatabaseConnection).Once()
		f.expectAudit(t, 2, 40, 40)

		report, err := f.scanner.Scan(ctx, portuse.ScanOptions{PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, 2, report.UsersScanned)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, uint64(1), report.Errors[0].UserID)
	})

	t.Run("Listing failure aborts the scan", func(t *testing.T) {
		f := newScannerFixture(t)

		f.userRepo.EXPECT().ListIDs(ctx, uint64(0), 10).
			Return(nil, errs.ErrDatabaseConnection).Once()

		report, err := f.scanner.Scan(ctx, portuse.ScanOptions{PageSize: 10})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Failed correction leaves user flagged but uncorrected", func(t *testing.T) {
		f := newScannerFixture(t)

		f.userRepo.EXPECT().ListIDs(ctx, uint64(0), 10).Return([]uint64{2}, nil).Once()
		f.expectAudit(t, 2, 500, 50)
		f.ledger.EXPECT().Reconcile(ctx, uint64(2), mock.AnythingOfType("string")).
			Return(nil, errs.ErrDatabaseConnection).Once()

		report, err := f.scanner.Scan(ctx, portuse.ScanOptions{AutoCorrect: true, PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, 1, report.TotalFlagged)
		assert.Equal(t, 0, report.CorrectedCount)
		assert.False(t, report.FlaggedUsers[0].Corrected)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0].Error, "correction failed")
	})

	t.Run("Cancelled context stops the scan", func(t *testing.T) {
		f := newScannerFixture(t)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		f.userRepo.EXPECT().ListIDs(cancelled, uint64(0), 10).Return([]uint64{1}, nil).Once()

		report, err := f.scanner.Scan(cancelled, portuse.ScanOptions{PageSize: 10})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
