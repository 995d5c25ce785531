package redis

import (
	"context"
	"io"
)

// Shutdown wraps client closure as a hook for the bot's stop sequence.
// Register it when the bot borrows the client rather than owning it:
//
//	bot, err := cordial.New(
//	    cordial.WithCooldownStore(cooldown.NewRedis(client)),
//	    cordial.WithShutdownHook(redis.Shutdown(client)),
//	)
func Shutdown(client io.Closer) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Close()
	}
}
