// Package redis opens the go-redis client a bot needs for its shared stores.
//
// This package wraps [github.com/redis/go-redis/v9] with startup retry,
// a health check closure, and a shutdown hook, sized for a bot process
// rather than a request-serving fleet.
//
// # Usage
//
// Open a client in main and hand it to the stores that need one:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/cordialdev/cordial/pkg/cooldown"
//		"github.com/cordialdev/cordial/pkg/redis"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		client := redis.MustOpen(ctx, os.Getenv("REDIS_URL"))
//		store := cooldown.NewRedis(client)
//		// ...
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are supported. Pool
// size, idle connections, retry, and timeouts are tuned with functional
// options; the defaults suit a single bot process.
//
// # Health checks
//
// [Healthcheck] returns a func(context.Context) error that pings the
// server, in the shape pkg/health expects:
//
//	cordial.WithHealthServer(":8081", health.Checks{
//	    "redis": redis.Healthcheck(client),
//	})
//
// # Shutdown
//
// [Shutdown] wraps client closure as a hook for the bot's stop sequence:
//
//	bot, err := cordial.New(
//	    cordial.WithCooldownStore(cooldown.NewRedis(client)),
//	    cordial.WithShutdownHook(redis.Shutdown(client)),
//	)
//
// # Errors
//
// Failures wrap the package sentinels, so callers can branch with
// [errors.Is]:
//
//   - [ErrEmptyConnectionURL]: no connection URL was given
//   - [ErrFailedToParseURL]: the URL or its scheme is malformed
//   - [ErrConnectionFailed]: every retry attempt failed
//   - [ErrHealthcheckFailed]: the server did not answer the ping
package redis
