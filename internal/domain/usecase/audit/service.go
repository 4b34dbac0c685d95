package audit

import (
	"context"

	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/domain/port/persistence"
	portuse "github.com/votequest/coin-service/internal/domain/port/usecase"
)

// Service ties the auditor and scanner together behind the AuditUseCase port
type Service struct {
	auditor *Auditor
	scanner *Scanner
}

// NewService creates the audit service
func NewService(
	userRepo persistence.UserRepository,
	txnRepo persistence.TransactionRepository,
	ledger portuse.LedgerUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	auditor := NewAuditor(userRepo, txnRepo, logger)
	scanner := NewScanner(userRepo, auditor, ledger, timeProvider, logger)
	return &Service{
		auditor: auditor,
		scanner: scanner,
	}
}

// AuditUser implements portuse.AuditUseCase
func (s *Service) AuditUser(ctx context.Context, userID uint64) (*portuse.AuditResult, error) {
	return s.auditor.AuditUser(ctx, userID)
}

// Scan implements portuse.AuditUseCase
func (s *Service) Scan(ctx context.Context, opts portuse.ScanOptions) (*portuse.ScanReport, error) {
	return s.scanner.Scan(ctx, opts)
}
