package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one admission check. Reset is the instant the
// identifier's window elapses; a rejected caller can derive retry-after
// from it.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter admits or rejects one request for a client identifier. The default
// implementation is process-local and resets on restart; the Redis-backed
// implementation shares counters across processes. Implementations must keep
// the counter increment atomic under concurrent requests from the same
// identifier.
type Limiter interface {
	Check(ctx context.Context, identifier string) (Decision, error)
}
