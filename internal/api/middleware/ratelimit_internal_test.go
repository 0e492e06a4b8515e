package middleware

import (
	"strconv"
	"testing"
	"time"
)

func TestRateLimiter_EvictsIdleLimiters(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, nil)
	rl.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		rl.allow("user:" + strconv.Itoa(i))
	}
	if got := len(rl.limiters); got != 100 {
		t.Fatalf("Expected 100 tracked limiters, got %d", got)
	}

	now = now.Add(limiterIdleTTL)
	if !rl.allow("user:fresh") {
		t.Fatal("Expected fresh key to be allowed")
	}
	if got := len(rl.limiters); got != 1 {
		t.Errorf("Expected idle limiters to be evicted, %d remain", got)
	}
}

func TestRateLimiter_ActiveLimiterSurvivesSweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, nil)
	rl.now = func() time.Time { return now }

	if !rl.allow("user:1") {
		t.Fatal("Expected first request to pass")
	}
	now = now.Add(limiterIdleTTL - time.Second)
	rl.allow("user:1")

	now = now.Add(time.Second)
	rl.allow("user:2")
	if _, ok := rl.limiters["user:1"]; !ok {
		t.Error("Expected recently used limiter to be kept")
	}
}
