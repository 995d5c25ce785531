package cooldown

// RedisOption configures the Redis store.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix string
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix: "cooldown",
	}
}

// WithPrefix sets a key prefix for all store operations. Keys are
// stored as "{prefix}:{key}". Useful for namespacing when several bots
// share the same Redis instance.
// Default: "cooldown".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}
