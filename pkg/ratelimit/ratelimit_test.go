package ratelimit

import (
	"errors"
	"testing"
)

func TestLimiter_Allow(t *testing.T) {
	rl := New(60) // 1 per second, burst 6

	for i := 0; i < 6; i++ {
		if err := rl.Allow("s1"); err != nil {
			t.Fatalf("request %d: unexpected error %v", i, err)
		}
	}
	if err := rl.Allow("s1"); !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("expected ErrLimitExceeded, got %v", err)
	}

	// Keys are independent.
	if err := rl.Allow("s2"); err != nil {
		t.Errorf("other key should not be limited: %v", err)
	}
}

func TestLimiter_MinimumBurst(t *testing.T) {
	rl := New(5)
	if rl.burst != 1 {
		t.Errorf("burst = %d, want 1", rl.burst)
	}
	if err := rl.Allow("k"); err != nil {
		t.Errorf("first request should pass: %v", err)
	}
}
