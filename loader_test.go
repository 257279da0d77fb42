// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings_test

import (
	"errors"
	"testing"

	"github.com/nil-go/settings"
	"github.com/nil-go/settings/internal/assert"
)

func TestStore_Load(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		values      map[string]any
		loaders     []settings.Loader
		expected    map[string]any
		err         string
	}{
		{
			description: "empty store",
			loaders:     []settings.Loader{mapLoader{"a": map[string]any{"b": 1}}},
			expected:    map[string]any{"a": map[string]any{"b": 1}},
		},
		{
			description: "later loader takes precedence",
			loaders: []settings.Loader{
				mapLoader{"a": 1, "list": []any{"x"}},
				mapLoader{"a": 2, "list": []any{"y"}},
			},
			expected: map[string]any{"a": 2, "list": []any{"x", "y"}},
		},
		{
			description: "merge into initial values",
			values:      map[string]any{"a": map[string]any{"b": 1, "c": 2}},
			loaders:     []settings.Loader{mapLoader{"a": map[string]any{"b": 9}}},
			expected:    map[string]any{"a": map[string]any{"b": 9, "c": 2}},
		},
		{
			description: "nil loader",
			loaders:     []settings.Loader{nil},
			expected:    map[string]any{},
			err:         "cannot load config from nil loader",
		},
		{
			description: "loader error",
			values:      map[string]any{"a": 1},
			loaders:     []settings.Loader{errorLoader{}},
			expected:    map[string]any{"a": 1},
			err:         "load configuration: load error",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			store := settings.New(testcase.values)
			for _, loader := range testcase.loaders {
				err := store.Load(loader)
				if testcase.err != "" {
					assert.EqualError(t, err, testcase.err)
				} else {
					assert.NoError(t, err)
				}
			}
			assert.Equal(t, testcase.expected, store.Values())
		})
	}
}

type mapLoader map[string]any

func (m mapLoader) Load() (map[string]any, error) {
	return m, nil
}

func (m mapLoader) String() string {
	return "map"
}

type errorLoader struct{}

func (errorLoader) Load() (map[string]any, error) {
	return nil, errors.New("load error")
}
