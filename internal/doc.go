// Package internal holds the bot core: construction and lifecycle, the
// command descriptor registry, the help command, the gateway listeners,
// the condition classifier that turns observed faults into localized
// user-facing messages, and the diagnostic reporter behind it.
//
// The public surface is re-exported by the root cordial package; nothing
// here is imported directly by users.
package internal
