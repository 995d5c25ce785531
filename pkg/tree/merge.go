package tree

// Merge layers override onto defaults and returns a fresh tree.
// Neither input is mutated.
//
// Rules, applied per key:
//   - both sides subtrees: merge recursively
//   - override value is nil: entry skipped, the default (if any) shows through
//   - any other override value: override wins, including on type mismatch
//   - key only in defaults: carried into the result
//   - key only in override: carried into the result
//
// The same override merged twice yields the same result:
// Merge(d, x) == Merge(d, Merge(d, x)).
func Merge(defaults, override Tree) Tree {
	out := defaults.Clone()
	if out == nil {
		out = make(Tree)
	}

	for key, overVal := range override {
		if overVal == nil {
			continue
		}

		overTree, overIsTree := asTree(overVal)
		baseTree, baseIsTree := asTree(out[key])
		if overIsTree && baseIsTree {
			out[key] = Merge(baseTree, overTree)
			continue
		}
		if overIsTree {
			// Subtree replacing a scalar (or filling a gap): nil leaves
			// inside it are still dropped.
			out[key] = Merge(nil, overTree)
			continue
		}

		out[key] = cloneValue(overVal)
	}

	return out
}
