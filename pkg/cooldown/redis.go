package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript consumes one use and reports the bucket state in a single
// round trip. The window TTL is set together with the first INCR so a
// bucket can never survive its window.
var takeScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {count, ttl}
`)

// Redis is a cooldown store backed by Redis, for bots that run more
// than one process against the same guilds.
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedis creates a Redis-backed store. The client should be obtained
// from pkg/redis.Open or pkg/redis.MustOpen.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Redis{
		client: client,
		opts:   o,
	}
}

// Take consumes one use from the bucket, starting a fresh window if the
// previous one has ended.
func (r *Redis) Take(ctx context.Context, key string, rate int, per time.Duration) (Result, error) {
	if rate <= 0 || per <= 0 {
		return Result{Allowed: true}, nil
	}

	ms := max(per.Milliseconds(), 1)

	vals, err := takeScript.Run(ctx, r.client, []string{r.prefixedKey(key)}, ms).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("cooldown: taking bucket %q: %w", key, err)
	}
	if len(vals) != 2 {
		return Result{}, fmt.Errorf("cooldown: taking bucket %q: unexpected reply of %d values", key, len(vals))
	}

	count := vals[0]
	ttl := time.Duration(vals[1]) * time.Millisecond
	if ttl < 0 {
		ttl = 0
	}
	resetAt := time.Now().Add(ttl)

	if count <= int64(rate) {
		return Result{Allowed: true, Remaining: rate - int(count), ResetAt: resetAt}, nil
	}

	return Result{RetryAfter: ttl, ResetAt: resetAt}, nil
}

// Reset clears the bucket for key.
func (r *Redis) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefixedKey(key)).Err(); err != nil {
		return fmt.Errorf("cooldown: resetting bucket %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for Redis. The client lifecycle is managed
// separately by the caller (via pkg/redis.Shutdown).
func (r *Redis) Close() error {
	return nil
}

// prefixedKey returns the full Redis key with prefix.
func (r *Redis) prefixedKey(key string) string {
	if r.opts.prefix == "" {
		return key
	}
	return r.opts.prefix + ":" + key
}

var _ Store = (*Redis)(nil)
