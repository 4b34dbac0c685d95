package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/domain/port/persistence"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
)

// DefaultScanPageSize bounds how many user IDs one scan page fetches
const DefaultScanPageSize = 500

// Scanner is the unreceipted-coin batch job: it audits every user and
// collects the ones whose cached balance drifted from the ledger. A scan
// persists nothing and is safe to re-run; re-running reproduces the same
// flagged set plus any drift generated in the interim.
type Scanner struct {
	userRepo     persistence.UserRepository
	auditor      *Auditor
	ledger       portuse.LedgerUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	pageSize     int
}

// NewScanner creates an unreceipted-coin scanner. The ledger engine is used
// for auto-correction so every correction is itself receipted.
func NewScanner(
	userRepo persistence.UserRepository,
	auditor *Auditor,
	ledger portuse.LedgerUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Scanner {
	return &Scanner{
		userRepo:     userRepo,
		auditor:      auditor,
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
		pageSize:     DefaultScanPageSize,
	}
}

// Scan iterates the whole user population with keyset pagination, auditing
// each user. A fetch failure for an individual user is recorded and skipped;
// failure to list users aborts the scan as a system-level error.
func (s *Scanner) Scan(ctx context.Context, opts portuse.ScanOptions) (*portuse.ScanReport, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	report := &portuse.ScanReport{
		ScanID:       uuid.NewString(),
		ScanTime:     s.timeProvider.Now().UTC(),
		FlaggedUsers: []portuse.FlaggedUser{},
	}

	s.logger.Info("Starting unreceipted-coin scan", map[string]any{
		"scan_id":      report.ScanID,
		"auto_correct": opts.AutoCorrect,
		"page_size":    pageSize,
	})

	var afterID uint64
	for {
		ids, err := s.userRepo.ListIDs(ctx, afterID, pageSize)
		if err != nil {
			// Losing the user listing means losing the scan itself, not a
			// single user entry.
			s.logger.Error("Scan aborted: cannot list users", map[string]any{
				"scan_id":  report.ScanID,
				"after_id": afterID,
				"error":    err.Error(),
			})
			return nil, fmt.Errorf("scan aborted: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		for _, userID := range ids {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s.scanUser(ctx, userID, opts.AutoCorrect, report)
		}

		afterID = ids[len(ids)-1]
		if len(ids) < pageSize {
			break
		}
	}

	s.logger.Info("Unreceipted-coin scan finished", map[string]any{
		"scan_id":         report.ScanID,
		"users_scanned":   report.UsersScanned,
		"total_flagged":   report.TotalFlagged,
		"corrected_count": report.CorrectedCount,
		"error_count":     len(report.Errors),
	})

	return report, nil
}

// scanUser audits one user and applies the optional correction, recording
// failures in the report rather than propagating them
func (s *Scanner) scanUser(ctx context.Context, userID uint64, autoCorrect bool, report *portuse.ScanReport) {
	report.UsersScanned++

	result, err := s.auditor.AuditUser(ctx, userID)
	if err != nil {
		report.Errors = append(report.Errors, portuse.ScanError{
			UserID: userID,
			Error:  err.Error(),
		})
		return
	}

	if result.Healthy() {
		return
	}

	flagged := portuse.FlaggedUser{
		UserID:      userID,
		Discrepancy: result.Discrepancy,
	}

	if autoCorrect {
		if _, err := s.ledger.Reconcile(ctx, userID, report.ScanID); err != nil {
			// A failed correction leaves the user flagged but uncorrected.
			report.Errors = append(report.Errors, portuse.ScanError{
				UserID: userID,
				Error:  fmt.Sprintf("correction failed: %v", err),
			})
		} else {
			flagged.Corrected = true
			report.CorrectedCount++
		}
	}

	report.TotalFlagged++
	report.FlaggedUsers = append(report.FlaggedUsers, flagged)
}
