package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter caps how often a given identifier may pass. Allow never returns
// an error; exhausted tokens are an expected condition, not a failure.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// MaxTrackedKeys bounds the in-memory bucket map so a flood of distinct
// identifiers cannot grow it without limit.
const MaxTrackedKeys = 10000

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// MemoryLimiter is a per-key token bucket with lazy refill. Refill adds
// floor(elapsed/window*limit) tokens, capped at limit, so a full burst of
// `limit` requests is allowed immediately after any refill tick. State is
// process-local and resets on restart.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= MaxTrackedKeys {
			l.evictStale(now)
		}
		b = &bucket{tokens: l.limit, lastRefill: now}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill)
	tokensToAdd := int(int64(elapsed) * int64(l.limit) / int64(l.window))
	if tokensToAdd > 0 {
		b.tokens += tokensToAdd
		if b.tokens > l.limit {
			b.tokens = l.limit
		}
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// evictStale drops buckets idle for at least one full window. A bucket that
// old has refilled completely, so dropping it loses no information.
func (l *MemoryLimiter) evictStale(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) >= l.window {
			delete(l.buckets, key)
		}
	}
}
