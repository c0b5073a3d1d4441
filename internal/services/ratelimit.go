package services

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Above this many tracked visitors the map is reset wholesale; buckets are
// cheap to rebuild and per-IP fairness matters more than perfect history.
const maxTrackedVisitors = 10000

// IPRateLimiter hands out one token bucket per client IP. It fronts the
// whole router, mainly to keep the login, signup and contact forms from
// being hammered.
type IPRateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
	logger   *slog.Logger
}

func NewIPRateLimiter(r rate.Limit, b int, logger *slog.Logger) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
		logger:   logger,
	}
}

// StartCleanup periodically discards the visitor map once it grows past
// maxTrackedVisitors.
func (i *IPRateLimiter) StartCleanup(interval time.Duration) {
	go func() {
		for {
			time.Sleep(interval)
			i.mu.Lock()
			if len(i.visitors) > maxTrackedVisitors {
				i.logger.Info("Resetting rate limiter visitors", "count", len(i.visitors))
				i.visitors = make(map[string]*rate.Limiter)
			}
			i.mu.Unlock()
		}
	}()
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, ok := i.visitors[ip]
	if !ok {
		limiter = rate.NewLimiter(i.r, i.b)
		i.visitors[ip] = limiter
	}

	return limiter
}
