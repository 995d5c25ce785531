package internal

import (
	"sort"
	"strings"
)

// Command describes one command for the help pages and usage strings. The
// framework routes only its own help invocation; descriptors exist so help
// and error messages can talk about the commands the caller dispatches.
type Command struct {
	// Name is the primary invocation name.
	Name string

	// Aliases are alternative invocation names.
	Aliases []string

	// Signature is the argument part of the usage string: "<member> [reason]".
	Signature string

	// Brief is the one-line summary shown on list pages.
	Brief string

	// Description is the long text shown on the command's own page. Falls
	// back to Brief when empty.
	Description string

	// Category groups commands on the bot help page.
	Category string

	// Hidden excludes the command from listings. It stays reachable by name.
	Hidden bool

	// Subcommands are nested commands, shown on the parent's page.
	Subcommands []Command
}

// Matches reports whether name refers to the command by name or alias.
func (c Command) Matches(name string, caseInsensitive bool) bool {
	if equalName(c.Name, name, caseInsensitive) {
		return true
	}
	for _, alias := range c.Aliases {
		if equalName(alias, name, caseInsensitive) {
			return true
		}
	}
	return false
}

// Subcommand finds a direct subcommand by name or alias.
func (c Command) Subcommand(name string, caseInsensitive bool) (Command, bool) {
	for _, sub := range c.Subcommands {
		if sub.Matches(name, caseInsensitive) {
			return sub, true
		}
	}
	return Command{}, false
}

// Registry holds the command descriptors the bot knows about. It is
// immutable after creation.
type Registry struct {
	commands        []Command
	caseInsensitive bool
}

// NewRegistry creates a registry over the given descriptors.
func NewRegistry(caseInsensitive bool, commands ...Command) *Registry {
	out := make([]Command, len(commands))
	copy(out, commands)
	return &Registry{commands: out, caseInsensitive: caseInsensitive}
}

// Lookup finds a top-level command by name or alias.
func (r *Registry) Lookup(name string) (Command, bool) {
	for _, c := range r.commands {
		if c.Matches(name, r.caseInsensitive) {
			return c, true
		}
	}
	return Command{}, false
}

// Visible returns the commands that belong on list pages, in
// registration order.
func (r *Registry) Visible() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns the category names of the visible commands, sorted,
// with uncategorized commands grouped under the empty string.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range r.Visible() {
		if !seen[c.Category] {
			seen[c.Category] = true
			names = append(names, c.Category)
		}
	}
	sort.Strings(names)
	return names
}

// Category returns the visible commands in the named category, in
// registration order.
func (r *Registry) Category(name string) []Command {
	var out []Command
	for _, c := range r.Visible() {
		if equalName(c.Category, name, r.caseInsensitive) {
			out = append(out, c)
		}
	}
	return out
}

func equalName(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
