// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/settings"
	"github.com/nil-go/settings/provider/file"
)

var _ settings.Loader = file.File{}

func TestFile_Load(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		path        string
		opts        []file.Option
		expected    map[string]any
		err         string
	}{
		{
			description: "json file",
			path:        "testdata/config.json",
			expected: map[string]any{
				"server": map[string]any{"host": "example.com"},
			},
		},
		{
			description: "yaml file",
			path:        "testdata/config.yaml",
			expected: map[string]any{
				"server": map[string]any{"port": 8080},
			},
		},
		{
			description: "empty file",
			path:        "testdata/empty.yaml",
			expected:    map[string]any{},
		},
		{
			description: "file (not exist)",
			path:        "not_found.json",
			err:         "read file: open not_found.json: no such file or directory",
		},
		{
			description: "file (ignore not exist)",
			path:        "not_found.json",
			opts:        []file.Option{file.IgnoreFileNotExist()},
			expected:    map[string]any{},
		},
		{
			description: "not a map",
			path:        "testdata/list.json",
			err:         "file content is not a map: []interface {}",
		},
		{
			description: "unmarshal error",
			path:        "testdata/config.json",
			opts: []file.Option{
				file.WithUnmarshal(func([]byte, any) error {
					return errors.New("unmarshal error")
				}),
			},
			err: "unmarshal: unmarshal error",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			values, err := file.New(testcase.path, testcase.opts...).Load()
			if testcase.err != "" {
				require.EqualError(t, err, testcase.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
		})
	}
}

func TestFile_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "file:config.json", file.New("config.json").String())
}

func TestNew_panic(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot create File with empty path", func() {
		file.New("")
	})
}
