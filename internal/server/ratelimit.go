package server

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SlotBot_Go/internal/handler"
	"github.com/osse101/SlotBot_Go/internal/metrics"
)

// ipWindow holds one client's counters for its current window.
type ipWindow struct {
	requests   int
	failedAuth int
	resetAt    time.Time
}

// IPLimiter counts API requests and failed logins per client IP. Each IP gets
// a fixed window that opens on its first request; idle IPs age out of the LRU
// and at most RateLimitTrackedIPs are remembered.
type IPLimiter struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *ipWindow]
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewIPLimiter allows limit requests per IP per RateLimitWindow. A
// non-positive limit falls back to RateLimitMax.
func NewIPLimiter(limit int) *IPLimiter {
	return newIPLimiter(limit, RateLimitWindow, time.Now)
}

func newIPLimiter(limit int, window time.Duration, now func() time.Time) *IPLimiter {
	if limit <= 0 {
		limit = RateLimitMax
	}
	return &IPLimiter{
		windows: expirable.NewLRU[string, *ipWindow](RateLimitTrackedIPs, nil, window),
		limit:   limit,
		window:  window,
		now:     now,
	}
}

// current returns ip's open window, starting a fresh one if the last has run
// out. Caller holds mu.
func (l *IPLimiter) current(ip string) *ipWindow {
	now := l.now()
	if w, ok := l.windows.Get(ip); ok && now.Before(w.resetAt) {
		return w
	}
	w := &ipWindow{resetAt: now.Add(l.window)}
	l.windows.Add(ip, w)
	return w
}

// Allow counts one request from ip. Over the limit it reports false and the
// time left until the window resets.
func (l *IPLimiter) Allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.current(ip)
	w.requests++
	over := w.requests - l.limit
	if over <= 0 {
		return true, 0
	}
	if over%RateLimitLogEvery == 1 {
		slog.Warn(LogMsgRateLimited, "ip", ip, "requests", w.requests, "limit", l.limit)
	}
	return false, w.resetAt.Sub(l.now())
}

// FailedAuth counts a rejected API key from ip and returns the misses so far
// in its window.
func (l *IPLimiter) FailedAuth(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.current(ip)
	w.failedAuth++
	if w.failedAuth%FailedAuthAlertFrom == 0 {
		slog.Warn(LogMsgRepeatedAuthFailures, "ip", ip, "count", w.failedAuth)
	}
	return w.failedAuth
}

// RateLimitMiddleware refuses callers over their per-IP budget with 429 and
// a Retry-After, and records the resolved IP for the handlers below it.
func RateLimitMiddleware(trustedProxies []string, limiter *IPLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustedProxies)
			if ok, wait := limiter.Allow(ip); !ok {
				metrics.HTTPRejected.WithLabelValues(metrics.ReasonRateLimited).Inc()
				secs := max(1, int(math.Ceil(wait.Seconds())))
				w.Header().Set(handler.HeaderRetryAfter, strconv.Itoa(secs))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, withClientIP(r, ip))
		})
	}
}
