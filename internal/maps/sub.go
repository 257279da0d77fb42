// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Parent walks the intermediate segments of path and returns the node
// that holds the leaf segment.
// It returns false if any intermediate segment does not resolve to a map[string]any.
func Parent(values map[string]any, path []string) (map[string]any, bool) {
	if values == nil || len(path) == 0 {
		return nil, false
	}

	next := values
	for _, key := range path[:len(path)-1] {
		sub, ok := next[key].(map[string]any)
		if !ok {
			return nil, false
		}
		next = sub
	}

	return next, true
}

// Lookup returns the value under the given path.
// The second result reports whether the leaf segment exists,
// even if it holds a nil value.
func Lookup(values map[string]any, path []string) (any, bool) {
	parent, ok := Parent(values, path)
	if !ok {
		return nil, false
	}
	value, ok := parent[path[len(path)-1]]

	return value, ok
}
