// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import "reflect"

// Clone returns a structural copy of the given value.
// Only map[string]any and sequences are copied, other values are returned as is.
// A nil map[string]any is copied as an empty map so it can be written into.
func Clone(value any) any {
	if values, ok := value.(map[string]any); ok {
		clone := make(map[string]any, len(values))
		for k, v := range values {
			clone[k] = Clone(v)
		}

		return clone
	}

	if values, ok := Sequence(value); ok {
		if values == nil {
			return value
		}

		clone := make([]any, len(values))
		for i, v := range values {
			clone[i] = Clone(v)
		}

		return clone
	}

	return value
}

// Sequence reports whether the value is a sequence and returns it as []any.
// Slices of any element type are sequences except []byte, which is a scalar.
func Sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []byte, nil:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	if rv.IsNil() {
		return nil, true
	}

	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}

	return values, true
}
