package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// throttleSweepSize is the number of tracked users above which idle
// limiters are dropped.
const throttleSweepSize = 1024

// Throttle limits how often each user can invoke commands.
type Throttle struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
	now      func() time.Time
}

// NewThrottle creates a Throttle allowing perSecond commands per user with
// the given burst. A non-positive perSecond disables throttling.
func NewThrottle(perSecond float64, burst int) *Throttle {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &Throttle{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
		now:      time.Now,
	}
}

// Allow reports whether userID may run a command now and consumes a token if so.
func (t *Throttle) Allow(userID string) bool {
	if t.limit == rate.Inf {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	limiter, ok := t.limiters[userID]
	if !ok {
		if len(t.limiters) >= throttleSweepSize {
			t.sweep(now)
		}
		limiter = rate.NewLimiter(t.limit, t.burst)
		t.limiters[userID] = limiter
	}

	return limiter.AllowN(now, 1)
}

// sweep drops limiters that have refilled completely.
func (t *Throttle) sweep(now time.Time) {
	for id, limiter := range t.limiters {
		if limiter.TokensAt(now) >= float64(t.burst) {
			delete(t.limiters, id)
		}
	}
}
