package tree

import (
	"fmt"
	"strings"
)

// Tree is a nested string-keyed configuration tree. Leaf values are scalars
// (string, bool, int, int64, float64, nil) or []any; branch values are Trees.
type Tree map[string]any

// Get retrieves the value at a dot-separated path.
// Intermediate nodes must be subtrees for the lookup to succeed.
func (t Tree) Get(path string) (any, bool) {
	if t == nil {
		return nil, false
	}

	current := any(t)
	for _, part := range strings.Split(path, ".") {
		m, ok := asTree(current)
		if !ok {
			return nil, false
		}

		val, exists := m[part]
		if !exists {
			return nil, false
		}

		current = val
	}

	return current, true
}

// Set stores a value at a dot-separated path, creating intermediate
// subtrees as needed. Existing non-tree intermediates are replaced.
func (t Tree) Set(path string, value any) {
	if t == nil {
		return
	}

	parts := strings.Split(path, ".")
	current := t

	for _, part := range parts[:len(parts)-1] {
		if next, ok := asTree(current[part]); ok {
			current = next
			continue
		}
		next := make(Tree)
		current[part] = next
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// Delete removes the value at a dot-separated path.
// Reports whether an entry was found and removed.
func (t Tree) Delete(path string) bool {
	if t == nil {
		return false
	}

	parts := strings.Split(path, ".")
	current := t

	for _, part := range parts[:len(parts)-1] {
		next, ok := asTree(current[part])
		if !ok {
			return false
		}
		current = next
	}

	key := parts[len(parts)-1]
	if _, exists := current[key]; !exists {
		return false
	}

	delete(current, key)
	return true
}

// Clone returns a deep copy sharing no structure with the receiver.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}

	out := make(Tree, len(t))
	for key, val := range t {
		out[key] = cloneValue(val)
	}
	return out
}

// Flatten collapses the tree into a single-level map with dot-separated keys.
// Empty subtrees disappear; slices are treated as leaves.
func (t Tree) Flatten() map[string]any {
	result := make(map[string]any)
	flattenInto(t, "", result)
	return result
}

func flattenInto(t Tree, prefix string, result map[string]any) {
	for key, val := range t {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := asTree(val); ok {
			flattenInto(nested, fullKey, result)
		} else {
			result[fullKey] = val
		}
	}
}

// Normalize converts decoder output into the canonical Tree shape: map[any]any
// and map[string]any nodes become Trees recursively, slice elements are
// normalized in place, and non-string map keys are stringified. Returns an
// error when the top-level value is not a map.
func Normalize(v any) (Tree, error) {
	node, ok := normalizeValue(v).(Tree)
	if !ok {
		return nil, fmt.Errorf("tree: expected a map at the top level, got %T", v)
	}
	return node, nil
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case Tree:
		out := make(Tree, len(val))
		for k, elem := range val {
			out[k] = normalizeValue(elem)
		}
		return out
	case map[string]any:
		out := make(Tree, len(val))
		for k, elem := range val {
			out[k] = normalizeValue(elem)
		}
		return out
	case map[any]any:
		out := make(Tree, len(val))
		for k, elem := range val {
			out[fmt.Sprintf("%v", k)] = normalizeValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeValue(elem)
		}
		return out
	default:
		return val
	}
}

func cloneValue(val any) any {
	switch v := val.(type) {
	case Tree:
		return v.Clone()
	case map[string]any:
		return Tree(v).Clone()
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return val
	}
}

// asTree unifies the two map shapes a Tree node can arrive in. Decoded input
// that skipped Normalize still walks correctly.
func asTree(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return Tree(m), true
	default:
		return nil, false
	}
}
