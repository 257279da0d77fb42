// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Merge recursively merges the src map into the dst map.
//
// For each key in src:
//   - if dst holds a sequence, the src value is appended to a new sequence
//     (elements of a src sequence are appended one by one);
//   - if both values are map[string]any and dst is not nil, they are merged recursively;
//   - otherwise dst takes a copy of the src value.
//
// Keys only present in dst are left untouched.
func Merge(dst, src map[string]any) {
	for key, srcVal := range src {
		dstVal := dst[key]

		if dstSeq, ok := Sequence(dstVal); ok {
			dst[key] = concat(dstSeq, srcVal)

			continue
		}

		srcMap, srcOk := srcVal.(map[string]any)
		dstMap, dstOk := dstVal.(map[string]any)
		if srcOk && dstOk && dstMap != nil {
			Merge(dstMap, srcMap)

			continue
		}

		// Copy to avoid sharing containers with src.
		dst[key] = Clone(srcVal)
	}
}

func concat(dst []any, value any) []any {
	src, ok := Sequence(value)
	if !ok {
		src = []any{value}
	}

	values := make([]any, 0, len(dst)+len(src))
	values = append(values, dst...)
	for _, v := range src {
		values = append(values, Clone(v))
	}

	return values
}
