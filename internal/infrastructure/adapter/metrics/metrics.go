package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger and scan metrics, registered on the default registry and exposed
// via /metrics.
var (
	// TransactionsApplied counts ledger rows appended, labeled by type tag
	TransactionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "votequest",
		Subsystem: "ledger",
		Name:      "transactions_applied_total",
		Help:      "Number of coin transactions appended to the ledger.",
	}, []string{"type"})

	// TransactionsRejected counts applies rejected at validation or balance check
	TransactionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "votequest",
		Subsystem: "ledger",
		Name:      "transactions_rejected_total",
		Help:      "Number of coin transactions rejected before commit.",
	}, []string{"cause"})

	// DuplicatesSuppressed counts idempotent no-op applies
	DuplicatesSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "votequest",
		Subsystem: "ledger",
		Name:      "duplicates_suppressed_total",
		Help:      "Number of applies suppressed by the idempotency key.",
	})

	// ScansRun counts scan invocations
	ScansRun = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "votequest",
		Subsystem: "audit",
		Name:      "scans_run_total",
		Help:      "Number of unreceipted-coin scans executed.",
	})

	// UsersFlagged counts users flagged for balance drift across all scans
	UsersFlagged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "votequest",
		Subsystem: "audit",
		Name:      "users_flagged_total",
		Help:      "Number of users flagged with a nonzero balance discrepancy.",
	})

	// UsersCorrected counts reconciliations applied by auto-correcting scans
	UsersCorrected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "votequest",
		Subsystem: "audit",
		Name:      "users_corrected_total",
		Help:      "Number of drifted balances reconciled through the engine.",
	})

	// RequestDuration observes HTTP handler latency
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "votequest",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "status"})
)
