// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Insert inserts the given value into the dst map under the given path.
// Missing intermediate nodes are created, and intermediate values
// which are not map[string]any (or are a nil map) are replaced by an empty map.
func Insert(dst map[string]any, path []string, value any) {
	next := dst
	for _, key := range path[:len(path)-1] {
		sub, ok := next[key].(map[string]any)
		if !ok || sub == nil {
			// Override if the val is absent, nil or not map[string]any.
			sub = make(map[string]any)
			next[key] = sub
		}
		next = sub
	}
	next[path[len(path)-1]] = value
}
