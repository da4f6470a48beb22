package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(perMinute int) (*Limiter, *time.Time) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	l := &Limiter{
		clients:     make(map[string]*window),
		perMinute:   perMinute,
		now:         func() time.Time { return now },
		stopCleanup: make(chan struct{}),
	}
	return l, &now
}

func TestAllowUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(3)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request over the limit allowed")
	}
}

func TestClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first client's first request denied")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("second client throttled by first client's traffic")
	}
}

func TestWindowResets(t *testing.T) {
	l, now := newTestLimiter(1)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first request denied")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("second request in the same window allowed")
	}

	*now = now.Add(61 * time.Second)
	if !l.Allow("10.0.0.1") {
		t.Error("request after window expiry denied")
	}
}

func TestDropStale(t *testing.T) {
	l, now := newTestLimiter(10)

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")
	if got := l.ActiveClients(); got != 2 {
		t.Fatalf("ActiveClients = %d, want 2", got)
	}

	*now = now.Add(staleAfter + time.Minute)
	l.dropStale()
	if got := l.ActiveClients(); got != 0 {
		t.Errorf("ActiveClients after cleanup = %d, want 0", got)
	}
}
