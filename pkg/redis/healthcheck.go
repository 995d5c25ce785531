package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Healthcheck returns a readiness probe that pings the server, in the
// shape pkg/health expects:
//
//	health.Checks{"redis": redis.Healthcheck(client)}
//
// A nil client fails the probe rather than panicking, so a bot that
// starts without Redis reports not-ready instead of crashing.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
