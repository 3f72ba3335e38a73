package http

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	// loginAttemptsPerWindow caps password attempts per client IP within
	// loginWindow. Well above what one administrator needs, low enough to
	// blunt credential guessing.
	loginAttemptsPerWindow = 10
	loginWindow            = time.Minute
)

// loginLimiter throttles login attempts per client IP. Like the session set
// it lives only in memory and empties on process restart.
type loginLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastAttempt time.Time
	attempts    int
}

func newLoginLimiter() *loginLimiter {
	rl := &loginLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

// startCleanup runs periodic cleanup to remove stale client entries.
func (rl *loginLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes.
func (rl *loginLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastAttempt.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// stop shuts down the cleanup goroutine.
func (rl *loginLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

// allow reports whether another login attempt from the given IP may proceed.
func (rl *loginLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{
			lastAttempt: now,
			attempts:    1,
		}
		return true
	}

	// Reset counter once the window has passed
	if now.Sub(client.lastAttempt) > loginWindow {
		client.attempts = 1
		client.lastAttempt = now
		return true
	}

	client.attempts++
	client.lastAttempt = now
	return client.attempts <= loginAttemptsPerWindow
}

// clientIP strips the port from the request's remote address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
