package redis

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/clock"
)

func TestRateLimitStore_KeyRotatesPerWindow(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 1, 1, 10, 7, 0, 0, time.UTC))
	s := NewRateLimitStore(nil, 100, 15*time.Minute, clk, zerolog.Nop())

	first := s.key("203.0.113.9", clk.Now())
	clk.Advance(7 * time.Minute)
	same := s.key("203.0.113.9", clk.Now())
	clk.Advance(time.Minute)
	next := s.key("203.0.113.9", clk.Now())

	if first != same {
		t.Fatalf("expected same window key, got %s and %s", first, same)
	}
	if first == next {
		t.Fatalf("expected new window key after boundary, got %s", next)
	}
	if want := "ratelimit:203.0.113.9:1735725600"; first != want {
		t.Fatalf("expected %s, got %s", want, first)
	}
}

func TestRateLimitStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	s := NewRateLimitStore(client, 1, time.Minute, nil, zerolog.Nop())
	allowed, err := s.Allow("198.51.100.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatalf("expected request to be allowed when redis is down")
	}
}
