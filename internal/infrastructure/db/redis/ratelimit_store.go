package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/clock"
)

const rateLimitOpTimeout = 250 * time.Millisecond

// RateLimitStore is a fixed-window request counter shared by every API
// instance. It satisfies echo's RateLimiterStore.
// Key format: ratelimit:<identifier>:<window_start_unix>
type RateLimitStore struct {
	client *redis.Client
	max    int64
	window time.Duration
	clock  clock.Clock
	log    zerolog.Logger
}

// NewRateLimitStore allows max requests per identifier in each window.
func NewRateLimitStore(client *redis.Client, max int, window time.Duration, clk clock.Clock, log zerolog.Logger) *RateLimitStore {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &RateLimitStore{client: client, max: int64(max), window: window, clock: clk, log: log}
}

// Allow counts the request against the current window. When Redis is
// unreachable the request is allowed and the failure logged.
func (s *RateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rateLimitOpTimeout)
	defer cancel()

	key := s.key(identifier, s.clock.Now())

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, s.window)
		return nil
	})
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limit store unavailable, allowing request")
		return true, nil
	}

	return incr.Val() <= s.max, nil
}

func (s *RateLimitStore) key(identifier string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", identifier, now.Truncate(s.window).Unix())
}
