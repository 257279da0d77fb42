// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings_test

import (
	"strings"
	"testing"
	"time"

	"github.com/nil-go/settings"
	"github.com/nil-go/settings/internal/assert"
)

func TestStore_Unmarshal(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		opts        []settings.Option
		values      map[string]any
		assert      func(*testing.T, *settings.Store)
	}{
		{
			description: "empty values",
			assert: func(t *testing.T, store *settings.Store) {
				var value string
				assert.NoError(t, store.Unmarshal("config", &value))
				assert.Equal(t, "", value)
			},
		},
		{
			description: "for primary type",
			values:      map[string]any{"config": "string"},
			assert: func(t *testing.T, store *settings.Store) {
				var value string
				assert.NoError(t, store.Unmarshal("config", &value))
				assert.Equal(t, "string", value)
			},
		},
		{
			description: "falsy value",
			values:      map[string]any{"config": false},
			assert: func(t *testing.T, store *settings.Store) {
				value := true
				assert.NoError(t, store.Unmarshal("config", &value))
				assert.False(t, value)
			},
		},
		{
			description: "whole tree into struct",
			values:      map[string]any{"config": "struct"},
			assert: func(t *testing.T, store *settings.Store) {
				var value struct {
					Config string
				}
				assert.NoError(t, store.Unmarshal("", &value))
				assert.Equal(t, "struct", value.Config)
			},
		},
		{
			description: "nested struct with tags",
			values: map[string]any{
				"server": map[string]any{
					"host":    "example.com",
					"port":    "8080",
					"timeout": "5s",
					"tags":    "a,b",
				},
			},
			assert: func(t *testing.T, store *settings.Store) {
				var value struct {
					Host    string
					Port    int
					Timeout time.Duration
					Labels  []string `settings:"tags"`
				}
				assert.NoError(t, store.Unmarshal("server", &value))
				assert.Equal(t, "example.com", value.Host)
				assert.Equal(t, 8080, value.Port)
				assert.Equal(t, 5*time.Second, value.Timeout)
				assert.Equal(t, []string{"a", "b"}, value.Labels)
			},
		},
		{
			description: "customized tag name",
			opts:        []settings.Option{settings.WithTagName("yaml")},
			values:      map[string]any{"server": map[string]any{"addr": "localhost"}},
			assert: func(t *testing.T, store *settings.Store) {
				var value struct {
					Address string `yaml:"addr"`
				}
				assert.NoError(t, store.Unmarshal("server", &value))
				assert.Equal(t, "localhost", value.Address)
			},
		},
		{
			description: "invalid key",
			values:      map[string]any{"config": "string"},
			assert: func(t *testing.T, store *settings.Store) {
				var value string
				err := store.Unmarshal("config..nest", &value)
				assert.ErrorIs(t, err, settings.ErrInvalidKey)
			},
		},
		{
			description: "decode error",
			values:      map[string]any{"config": "string"},
			assert: func(t *testing.T, store *settings.Store) {
				var value int
				err := store.Unmarshal("config", &value)
				assert.True(t, err != nil && strings.HasPrefix(err.Error(), "decode: "))
			},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			testcase.assert(t, settings.New(testcase.values, testcase.opts...))
		})
	}
}
