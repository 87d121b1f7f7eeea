package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryLimiterBoundary(t *testing.T) {
	limiter := NewMemoryLimiter(5, time.Minute, 100)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		decision, err := limiter.Check(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("Unexpected error on request %d: %v", i, err)
		}
		if !decision.Allowed {
			t.Fatalf("Expected request %d of 5 to be allowed", i)
		}
		if decision.Remaining != 5-i {
			t.Errorf("Expected remaining %d, got %d", 5-i, decision.Remaining)
		}
	}

	decision, err := limiter.Check(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Error("Expected request 6 to be rejected")
	}
	if decision.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", decision.Remaining)
	}
}

func TestMemoryLimiterIsolatesIdentifiers(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute, 100)
	ctx := context.Background()

	if d, _ := limiter.Check(ctx, "10.0.0.1"); !d.Allowed {
		t.Fatal("Expected first client to be allowed")
	}
	if d, _ := limiter.Check(ctx, "10.0.0.1"); d.Allowed {
		t.Error("Expected first client to be exhausted")
	}
	if d, _ := limiter.Check(ctx, "10.0.0.2"); !d.Allowed {
		t.Error("Expected second client to have its own window")
	}
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	limiter := NewMemoryLimiter(2, time.Minute, 100)
	ctx := context.Background()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	limiter.Check(ctx, "10.0.0.1")
	limiter.Check(ctx, "10.0.0.1")

	if d, _ := limiter.Check(ctx, "10.0.0.1"); d.Allowed {
		t.Fatal("Expected client to be exhausted before the window elapses")
	}

	// One second before the boundary the window still holds
	current = current.Add(59 * time.Second)
	if d, _ := limiter.Check(ctx, "10.0.0.1"); d.Allowed {
		t.Error("Expected rejection just before the window boundary")
	}

	current = current.Add(time.Second)
	decision, _ := limiter.Check(ctx, "10.0.0.1")
	if !decision.Allowed {
		t.Error("Expected a fresh window once the previous one elapsed")
	}
	if decision.Remaining != 1 {
		t.Errorf("Expected remaining 1 in the fresh window, got %d", decision.Remaining)
	}
	if want := current.Add(time.Minute); !decision.Reset.Equal(want) {
		t.Errorf("Expected reset at %v, got %v", want, decision.Reset)
	}
}

func TestMemoryLimiterEvictsOldestClient(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		limiter.Check(ctx, fmt.Sprintf("10.0.0.%d", i))
	}
	if limiter.Tracked() != 3 {
		t.Fatalf("Expected 3 tracked clients, got %d", limiter.Tracked())
	}

	// Touch the first client so the second becomes the oldest
	limiter.Check(ctx, "10.0.0.0")

	limiter.Check(ctx, "10.0.0.99")
	if limiter.Tracked() != 3 {
		t.Errorf("Expected tracked clients to stay capped at 3, got %d", limiter.Tracked())
	}

	// The evicted client starts over with a fresh window
	if d, _ := limiter.Check(ctx, "10.0.0.1"); !d.Allowed {
		t.Error("Expected the evicted client to get a fresh window")
	}
}
