package validation

import (
	"sync"
	"time"
)

// RateLimiter is a token bucket per command name. Frontends use it to
// throttle commands that keyboard auto-repeat would otherwise flood, such
// as level resets.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	buckets     map[string]*bucket
	now         func() time.Time
	mu          sync.Mutex
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter allows maxRequests per window for each command
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		buckets:     make(map[string]*bucket),
		now:         time.Now,
	}
}

// Allow reports whether command may run now and consumes a token if so
func (rl *RateLimiter) Allow(command string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[command]
	if !ok {
		b = &bucket{tokens: rl.maxRequests, lastRefill: now}
		rl.buckets[command] = b
	}

	rl.refill(b, now)

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// refill adds tokens in proportion to the fraction of the window elapsed
func (rl *RateLimiter) refill(b *bucket, now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed <= 0 || b.tokens >= rl.maxRequests {
		b.lastRefill = now
		return
	}

	add := int(float64(rl.maxRequests) * float64(elapsed) / float64(rl.window))
	if add > 0 {
		b.tokens = min(rl.maxRequests, b.tokens+add)
		b.lastRefill = now
	}
}
