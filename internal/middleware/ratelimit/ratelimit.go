// Package ratelimit caps per-client request rates with a fixed one-minute
// window keyed by remote IP.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request counts per client. The zero value is not usable;
// build one with NewLimiter.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*window

	perMinute int
	now       func() time.Time

	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type window struct {
	start time.Time
	count int
}

// Entries idle longer than this get dropped by the cleanup loop.
const staleAfter = 10 * time.Minute

// NewLimiter allows perMinute requests per client per minute. Non-positive
// perMinute falls back to 120.
func NewLimiter(perMinute int) *Limiter {
	if perMinute <= 0 {
		perMinute = 120
	}
	l := &Limiter{
		clients:     make(map[string]*window),
		perMinute:   perMinute,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether a request from clientIP fits the current window.
func (l *Limiter) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients[clientIP]
	if !ok || now.Sub(w.start) > time.Minute {
		l.clients[clientIP] = &window{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= l.perMinute
}

// ActiveClients returns how many clients are currently tracked.
func (l *Limiter) ActiveClients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.shutdownOnce.Do(func() {
		close(l.stopCleanup)
	})
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.dropStale()
		case <-l.stopCleanup:
			return
		}
	}
}

func (l *Limiter) dropStale() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-staleAfter)
	for ip, w := range l.clients {
		if w.start.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}
