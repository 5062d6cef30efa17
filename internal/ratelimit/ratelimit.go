package ratelimit

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

type RateLimit interface {
	Allow(addr string) bool
}

type windowData struct {
	count       int
	windowStart time.Time
}

// FixedWindowLimiter counts requests per remote address in fixed windows.
// Counters survive the per-address state so denial totals can be logged.
type FixedWindowLimiter struct {
	maxRequests int
	window      time.Duration
	requests    map[string]*windowData
	mutex       sync.Mutex

	allowed atomic.Int64
	denied  atomic.Int64
}

func New(maxRequests int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		maxRequests: maxRequests,
		window:      window,
		requests:    make(map[string]*windowData),
	}
}

func (rl *FixedWindowLimiter) Allow(addr string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	wd := rl.requests[addr]

	// no data yet, or the window for this address has passed
	if wd == nil || now.Sub(wd.windowStart) > rl.window {
		if rl.maxRequests == 0 {
			rl.denied.Inc()
			return false
		}

		rl.requests[addr] = &windowData{
			count:       1,
			windowStart: now,
		}
		rl.allowed.Inc()

		return true
	}

	if wd.count >= rl.maxRequests {
		rl.denied.Inc()
		return false
	}
	wd.count++
	rl.allowed.Inc()

	return true
}

// Counts returns the running totals of allowed and denied requests.
func (rl *FixedWindowLimiter) Counts() (allowed, denied int64) {
	return rl.allowed.Load(), rl.denied.Load()
}

// Prune drops per-address state whose window has fully passed. Called
// opportunistically by the owner; the limiter stays correct without it.
func (rl *FixedWindowLimiter) Prune() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	for addr, wd := range rl.requests {
		if now.Sub(wd.windowStart) > rl.window {
			delete(rl.requests, addr)
		}
	}
}
