package cooldown

import (
	"context"
	"time"
)

// Scope selects which part of an invocation a cooldown buckets on.
type Scope int

const (
	// ScopeGlobal shares one bucket across all invocations of a command.
	ScopeGlobal Scope = iota
	// ScopeUser buckets per invoking user, regardless of guild.
	ScopeUser
	// ScopeGuild buckets per guild. Direct messages fall back to the user
	// bucket so DM invocations never share a window.
	ScopeGuild
	// ScopeChannel buckets per channel.
	ScopeChannel
	// ScopeMember buckets per user within a guild. Direct messages fall
	// back to the user bucket.
	ScopeMember
)

// String returns the scope name used in bucket keys and logs.
func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeGuild:
		return "guild"
	case ScopeChannel:
		return "channel"
	case ScopeMember:
		return "member"
	default:
		return "global"
	}
}

// Event carries the identifiers a scope buckets on. Fields that do not
// apply to the invocation (GuildID in a DM) are left empty.
type Event struct {
	UserID    string
	GuildID   string
	ChannelID string
}

// Bucket returns the key suffix identifying the event's bucket under
// the scope.
func (s Scope) Bucket(ev Event) string {
	switch s {
	case ScopeUser:
		return "user:" + ev.UserID
	case ScopeGuild:
		if ev.GuildID == "" {
			return "user:" + ev.UserID
		}
		return "guild:" + ev.GuildID
	case ScopeChannel:
		return "channel:" + ev.ChannelID
	case ScopeMember:
		if ev.GuildID == "" {
			return "user:" + ev.UserID
		}
		return "member:" + ev.GuildID + ":" + ev.UserID
	default:
		return "global"
	}
}

// Rule describes one cooldown: up to Rate uses per Per window, bucketed
// by Scope. The zero value imposes no limit.
type Rule struct {
	Rate  int
	Per   time.Duration
	Scope Scope
}

// Limited reports whether the rule imposes any limit.
func (r Rule) Limited() bool {
	return r.Rate > 0 && r.Per > 0
}

// Key builds the store key for one invocation of the named command.
func (r Rule) Key(command string, ev Event) string {
	return command + ":" + r.Scope.Bucket(ev)
}

// Result reports the outcome of a Take.
type Result struct {
	// Allowed is true when the invocation fits in the current window.
	Allowed bool
	// Remaining is the number of uses left in the window after this one.
	Remaining int
	// RetryAfter is how long until the bucket accepts again. Set only
	// when Allowed is false.
	RetryAfter time.Duration
	// ResetAt is when the current window ends.
	ResetAt time.Time
}

// Store tracks cooldown windows per bucket key.
type Store interface {
	// Take consumes one use from the bucket, starting a fresh window if
	// none is active. A rate or per of zero or less disables the limit
	// and always allows.
	Take(ctx context.Context, key string, rate int, per time.Duration) (Result, error)
	// Reset clears the bucket so the next Take starts a fresh window.
	// Resetting an unknown key is not an error.
	Reset(ctx context.Context, key string) error
	// Close releases store resources.
	Close() error
}
