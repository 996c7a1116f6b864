package http

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < 60; i++ {
		if !rl.allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("1.2.3.4") {
		t.Fatal("61st request within a minute should be blocked")
	}

	// Other clients are tracked independently.
	if !rl.allow("5.6.7.8") {
		t.Fatal("different IP should not be affected")
	}
}

func TestRateLimiterStopIsIdempotent(t *testing.T) {
	rl := newRateLimiter()
	rl.stop()
	rl.stop()
}

func TestRateLimiterCleanupRemovesStaleClients(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	rl.allow("1.2.3.4")
	rl.mu.Lock()
	rl.clients["1.2.3.4"].lastRequest = time.Now().Add(-11 * time.Minute)
	rl.mu.Unlock()

	rl.cleanupStaleEntries()

	rl.mu.Lock()
	_, exists := rl.clients["1.2.3.4"]
	rl.mu.Unlock()
	if exists {
		t.Fatal("stale client should have been removed")
	}
}
