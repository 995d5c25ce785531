// Package tree provides the nested string-keyed value tree that configuration
// and message catalogs are built from, along with deterministic deep merging.
//
// A Tree is a plain map[string]any whose values are scalars, nested Trees, or
// slices, matching what YAML and TOML decoders produce. Merge layers a user
// override onto a defaults tree without mutating either input:
//
//	merged := tree.Merge(defaults, override)
//
// Merging recurses where both sides carry a subtree, lets the override win at
// any leaf, carries override-only keys through untouched, and treats an
// explicit null in the override as "unset": the entry is skipped so the
// default underneath, if any, shows through.
//
// Decoder output is normalized into the canonical shape first:
//
//	raw, _ := tree.Normalize(decoded)
//
// Get, Set, and Flatten address values by dot-separated paths:
//
//	v, ok := merged.Get("log.channel")
//
// All operations are pure and allocate fresh maps; a Tree returned by Merge or
// Clone shares no structure with its inputs.
package tree
