package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/templui/lifecoach/internal/ctxkeys"
)

// RateLimiter keeps a sliding window of request times per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}

	go rl.cleanupLoop()

	return rl
}

// Allow records a request from ip and reports whether it fits in the window.
func (rl *RateLimiter) Allow(ip string) bool {
	ok, _ := rl.take(ip)
	return ok
}

// take is Allow plus how long a rejected client should wait.
func (rl *RateLimiter) take(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	recent := lo.Filter(rl.requests[ip], func(t time.Time, _ int) bool {
		return t.After(cutoff)
	})

	if len(recent) >= rl.limit {
		rl.requests[ip] = recent
		return false, recent[0].Add(rl.window).Sub(now)
	}

	rl.requests[ip] = append(recent, now)
	return true, 0
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

// cleanup forgets clients idle for two windows.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-2 * rl.window)
	for ip, requests := range rl.requests {
		if len(requests) == 0 || !requests[len(requests)-1].After(cutoff) {
			delete(rl.requests, ip)
		}
	}
}

// RateLimit allows limit requests per window per client IP. It guards the chat
// endpoint, where every request is an LLM call. A limit <= 0 disables it.
func RateLimit(limit int, window time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if limit <= 0 {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	limiter := NewRateLimiter(limit, window)

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)

			ok, wait := limiter.take(ip)
			if !ok {
				slog.Warn("rate limit exceeded",
					"ip", ip,
					"path", r.URL.Path,
					"retry_after", wait,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
				return
			}

			next(w, r)
		}
	}
}

// RealIP resolves the caller's address once and stores it in the context. Proxy headers
// count only when trustProxy is set.
func RealIP(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustProxy)
			next.ServeHTTP(w, r.WithContext(ctxkeys.WithClientIP(r.Context(), ip)))
		})
	}
}

// getClientIP returns the address resolved by RealIP, or the socket address.
func getClientIP(r *http.Request) string {
	if ip := ctxkeys.ClientIP(r.Context()); ip != "" {
		return ip
	}
	return clientIP(r, false)
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
