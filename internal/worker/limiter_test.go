package worker

import (
	"context"
	"testing"
	"time"

	"github.com/ppiankov/wikibase/internal/model"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1) // 100 entities/s, burst 1
	ctx := context.Background()

	if err := limiter.Wait(ctx, model.EntityTypeItem); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different kind should also work
	if err := limiter.Wait(ctx, model.EntityTypeProperty); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	start := time.Now()
	err := limiter.WaitWithDelay(ctx, model.EntityTypeItem, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}

	duration := time.Since(start)
	if duration < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", duration)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 entity/s, burst 1
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	// First entity ok
	if err := limiter.Wait(ctx, model.EntityTypeItem); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// Burst 1, token consumed
	if limiter.Allow(model.EntityTypeItem) {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Different kind should be allowed
	if !limiter.Allow(model.EntityTypeProperty) {
		t.Errorf("expected allow for other kind")
	}
}

func TestLimiter_SetKindRate(t *testing.T) {
	limiter := NewLimiter(10, 10) // fast default

	// Set strict limit for properties
	limiter.SetKindRate(model.EntityTypeProperty, 0.1, 1) // very slow

	// First passes (burst 1)
	if !limiter.Allow(model.EntityTypeProperty) {
		t.Errorf("first request should pass")
	}

	// Second fails
	if limiter.Allow(model.EntityTypeProperty) {
		t.Errorf("second request should fail")
	}

	// Items still fast
	if !limiter.Allow(model.EntityTypeItem) {
		t.Errorf("other kind should pass")
	}
}
