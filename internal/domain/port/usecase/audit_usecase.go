package usecase

import (
	"context"
	"time"
)

// AuditResult is the per-user outcome of a balance audit. Ephemeral; the
// core never persists it.
type AuditResult struct {
	UserID            uint64 `json:"userId"`
	StoredBalance     int64  `json:"storedBalance"`
	CalculatedBalance int64  `json:"calculatedBalance"`
	// Discrepancy is stored minus calculated; zero is healthy
	Discrepancy  int64 `json:"discrepancy"`
	ReceiptCount int64 `json:"receiptCount"`
}

// Healthy reports whether the stored balance matches the ledger
func (r AuditResult) Healthy() bool {
	return r.Discrepancy == 0
}

// ScanOptions configures a full-population scan
type ScanOptions struct {
	// AutoCorrect appends a receipted reconciliation transaction for every
	// flagged user instead of only reporting
	AutoCorrect bool
	// PageSize bounds how many user IDs are fetched per page; zero uses the
	// scanner default
	PageSize int
}

// FlaggedUser is a scan entry for a user whose cached balance drifted
type FlaggedUser struct {
	UserID      uint64 `json:"userId"`
	Discrepancy int64  `json:"discrepancy"`
	Corrected   bool   `json:"corrected"`
}

// ScanError records a per-user failure that did not abort the scan
type ScanError struct {
	UserID uint64 `json:"userId"`
	Error  string `json:"error"`
}

// ScanReport summarizes one scan invocation
type ScanReport struct {
	ScanID         string        `json:"scanId"`
	ScanTime       time.Time     `json:"scanTime"`
	UsersScanned   int           `json:"usersScanned"`
	TotalFlagged   int           `json:"totalFlagged"`
	FlaggedUsers   []FlaggedUser `json:"flaggedUsers"`
	CorrectedCount int           `json:"correctedCount"`
	Errors         []ScanError   `json:"errors,omitempty"`
}

// AuditUseCase defines the balance auditor and unreceipted-coin scanner
type AuditUseCase interface {
	// AuditUser recomputes a user's balance from the ledger and compares it
	// with the stored value. Read-only and side-effect-free.
	AuditUser(ctx context.Context, userID uint64) (*AuditResult, error)

	// Scan audits the whole user population. Per-user failures are recorded
	// and skipped; only a total inability to list users aborts the scan.
	Scan(ctx context.Context, opts ScanOptions) (*ScanReport, error)
}
