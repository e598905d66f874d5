package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gothamai/internal/domain"
)

// hit increments the window counter, starts the window on the first hit and
// returns the count with the milliseconds left.
var hit = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {n, redis.call('PTTL', KEYS[1])}
`)

// Redis is a fixed-window limiter shared by every replica using the same server.
type Redis struct {
	client *redis.Client
	prefix string
	limit  int
	period time.Duration
	now    func() time.Time
}

var _ domain.RateLimiter = (*Redis)(nil)

// NewRedisClient parses a redis:// URL and sets short timeouts.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 2 * time.Second
	opts.ReadTimeout = time.Second
	opts.WriteTimeout = time.Second
	return redis.NewClient(opts), nil
}

func NewRedis(client *redis.Client, prefix string, limit int, period time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, limit: limit, period: period, now: time.Now}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, int, time.Time, error) {
	res, err := hit.Run(ctx, r.client, []string{r.prefix + key}, r.period.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("rate limit hit: %w", err)
	}
	return r.decide(res)
}

func (r *Redis) decide(res []int64) (bool, int, time.Time, error) {
	if len(res) != 2 {
		return false, 0, time.Time{}, fmt.Errorf("rate limit hit: unexpected reply %v", res)
	}
	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	if ttl < 0 {
		ttl = r.period
	}
	return count <= r.limit, max(r.limit-count, 0), r.now().Add(ttl), nil
}
