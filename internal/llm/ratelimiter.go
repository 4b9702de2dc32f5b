package llm

import (
	"context"
	"sync"
	"time"
)

// rateLimiter is a token bucket holding at most perMinute tokens, refilled
// continuously. Each proxy attempt takes one token.
type rateLimiter struct {
	mu       sync.Mutex
	capacity float64
	interval time.Duration // time to earn one token
	tokens   float64
	last     time.Time
}

func newRateLimiter(perMinute int) *rateLimiter {
	return &rateLimiter{
		capacity: float64(perMinute),
		interval: time.Minute / time.Duration(perMinute),
		tokens:   float64(perMinute),
		last:     time.Now(),
	}
}

// reserve takes a token if one is available, otherwise it reports how long
// until the next one is.
func (r *rateLimiter) reserve() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.tokens += float64(now.Sub(r.last)) / float64(r.interval)
	if r.tokens > r.capacity {
		r.tokens = r.capacity
	}
	r.last = now

	if r.tokens >= 1 {
		r.tokens--
		return 0
	}
	return time.Duration((1 - r.tokens) * float64(r.interval))
}

// wait blocks until a token is taken or ctx ends.
func (r *rateLimiter) wait(ctx context.Context) error {
	for {
		delay := r.reserve()
		if delay == 0 {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
