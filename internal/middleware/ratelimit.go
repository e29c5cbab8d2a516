// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// attemptLog tracks submission timestamps for a single client IP.
type attemptLog struct {
	mu    sync.Mutex
	times []time.Time
}

// RateLimiter throttles requests per client IP over a sliding window.
// The router applies it to the login forms of both portals, which are
// the only endpoints worth brute-forcing.
type RateLimiter struct {
	mu     sync.RWMutex
	perIP  map[string]*attemptLog
	limit  int
	window time.Duration
	stopCh chan struct{}
}

// NewRateLimiter creates a limiter allowing limit requests per window
// and starts a background sweep of idle entries.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		perIP:  make(map[string]*attemptLog),
		limit:  limit,
		window: window,
		stopCh: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background sweep goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// allow records an attempt for key and reports whether it stays within
// the limit.
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.RLock()
	attempts, exists := rl.perIP[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Re-check under the write lock.
		attempts, exists = rl.perIP[key]
		if !exists {
			attempts = &attemptLog{}
			rl.perIP[key] = attempts
		}
		rl.mu.Unlock()
	}

	now := time.Now()
	cutoff := now.Add(-rl.window)

	attempts.mu.Lock()
	defer attempts.mu.Unlock()

	// Drop attempts that slid out of the window.
	fresh := attempts.times[:0]
	for _, ts := range attempts.times {
		if ts.After(cutoff) {
			fresh = append(fresh, ts)
		}
	}
	attempts.times = fresh

	if len(attempts.times) >= rl.limit {
		return false
	}

	attempts.times = append(attempts.times, now)
	return true
}

// cleanup removes IPs with no attempts inside the current window.
func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, attempts := range rl.perIP {
		attempts.mu.Lock()
		hasRecent := false
		for _, ts := range attempts.times {
			if ts.After(cutoff) {
				hasRecent = true
				break
			}
		}
		attempts.mu.Unlock()

		if !hasRecent {
			delete(rl.perIP, key)
		}
	}
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(ip) {
			slog.Warn("login attempts throttled", "ip", ip, "path", r.URL.Path)
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the client address behind the reverse proxy,
// preferring X-Forwarded-For, then X-Real-IP, then RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// The leftmost entry is the original client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
