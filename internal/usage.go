package internal

import "strings"

// Usage builds the invocation string shown in help pages and error
// messages: prefix, then each command on the path in bracket form, then the
// final command's signature. A command with aliases renders as
// [name|alias1|alias2] so every accepted spelling is visible.
//
//	Usage("!", ban) == "![ban|b] <member> [reason]"
func Usage(prefix string, path ...Command) string {
	if len(path) == 0 {
		return prefix
	}

	var b strings.Builder
	b.WriteString(prefix)
	for i, c := range path {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(bracketName(c))
	}

	if sig := path[len(path)-1].Signature; sig != "" {
		b.WriteString(" ")
		b.WriteString(sig)
	}
	return b.String()
}

// AppUsage builds the usage string for a slash command: the qualified name
// after "/", then the signature.
func AppUsage(path ...Command) string {
	if len(path) == 0 {
		return "/"
	}

	names := make([]string, len(path))
	for i, c := range path {
		names[i] = c.Name
	}

	out := "/" + strings.Join(names, " ")
	if sig := path[len(path)-1].Signature; sig != "" {
		out += " " + sig
	}
	return out
}

func bracketName(c Command) string {
	if len(c.Aliases) == 0 {
		return c.Name
	}
	return "[" + c.Name + "|" + strings.Join(c.Aliases, "|") + "]"
}
