package worker

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter implements per-entity-kind rate limiting, so that a flood of
// item lookups cannot starve property lookups sharing the same dump.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(entitiesPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(entitiesPerSecond),
		defaultBurst: burst,
	}
}

// Wait waits for rate limit clearance for the given entity kind
func (l *Limiter) Wait(ctx context.Context, entityKind string) error {
	return l.getLimiter(entityKind).Wait(ctx)
}

// Allow checks if processing one entity of the kind is allowed without waiting
func (l *Limiter) Allow(entityKind string) bool {
	return l.getLimiter(entityKind).Allow()
}

// getLimiter returns the rate limiter for an entity kind
func (l *Limiter) getLimiter(entityKind string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[entityKind]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[entityKind]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[entityKind] = limiter

	return limiter
}

// SetKindRate sets a custom rate limit for a specific entity kind
func (l *Limiter) SetKindRate(entityKind string, entitiesPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	l.limiters[entityKind] = rate.NewLimiter(rate.Limit(entitiesPerSecond), burst)
}

// WaitWithDelay waits for rate limit and adds an additional delay
func (l *Limiter) WaitWithDelay(ctx context.Context, entityKind string, additionalDelay time.Duration) error {
	if err := l.Wait(ctx, entityKind); err != nil {
		return err
	}

	if additionalDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(additionalDelay):
		}
	}

	return nil
}
