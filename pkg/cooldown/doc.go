// Package cooldown rate-limits command invocations with fixed windows.
//
// A [Rule] grants up to Rate uses per Per window, bucketed by [Scope]:
// per user, per guild, per channel, per member, or one global bucket.
// Window state lives in a [Store]; both implementations share the
// interface, so a bot can start on the in-process store and move to
// Redis when it grows past one process.
//
// # Taking from a bucket
//
// Build the bucket key from the rule and the invocation, then take one
// use:
//
//	rule := cooldown.Rule{Rate: 2, Per: 10 * time.Second, Scope: cooldown.ScopeUser}
//	key := rule.Key("ping", cooldown.Event{UserID: msg.Author.ID, GuildID: msg.GuildID})
//
//	res, err := store.Take(ctx, key, rule.Rate, rule.Per)
//	if err != nil {
//	    return err
//	}
//	if !res.Allowed {
//	    // res.RetryAfter says how long until the bucket accepts again.
//	}
//
// Guild and member scopes fall back to the user bucket in direct
// messages, where no guild id exists.
//
// # In-process store
//
// Use [NewMemory] for single-process bots. Windows live in a mutex-held
// map; a background janitor drops expired ones:
//
//	store := cooldown.NewMemory(cooldown.WithCleanupInterval(30 * time.Second))
//	defer store.Close()
//
// # Redis store
//
// Use [NewRedis] when several shards or processes must share buckets.
// Requires a [github.com/redis/go-redis/v9.UniversalClient] from
// [github.com/cordialdev/cordial/pkg/redis]:
//
//	client := redis.MustOpen(ctx, os.Getenv("REDIS_URL"))
//	store := cooldown.NewRedis(client, cooldown.WithPrefix("mybot:cooldown"))
//
// The take runs as a single Lua script, so the count and the window TTL
// move together even under concurrent invocations.
package cooldown
