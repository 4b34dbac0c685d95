package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so receipt timestamps are injectable
// in tests. Receipt hashes cover the assigned timestamp, so determinism in
// tests depends on controlling Now.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
