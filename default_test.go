// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !race

package settings_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/nil-go/settings"
	"github.com/nil-go/settings/internal/assert"
)

// Tests in this file swap the default Store, so they do not run in parallel.

func TestUnmarshal(t *testing.T) {
	store := settings.New(nil)
	assert.NoError(t, store.Load(mapLoader{"config": "string"}))
	settings.SetDefault(store)

	var v string
	assert.NoError(t, settings.Unmarshal("config", &v))
	assert.Equal(t, "string", v)
}

func TestGet(t *testing.T) {
	store := settings.New(nil)
	assert.NoError(t, store.Set("server.port", 8080))
	settings.SetDefault(store)

	assert.Equal(t, 8080, settings.Get[int]("server.port"))
	assert.Equal(t, "8080", settings.Get[string]("server.port"))
	assert.Equal(t, "", settings.Get[string]("server.host"))
}

func TestGet_error(t *testing.T) {
	buf := new(bytes.Buffer)
	store := settings.New(
		map[string]any{"config": "string"},
		settings.WithLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if len(groups) == 0 && attr.Key == slog.TimeKey {
					return slog.Attr{}
				}

				return attr
			},
		}))),
	)
	settings.SetDefault(store)

	assert.Equal(t, 0, settings.Get[int]("config"))
	assert.True(t, strings.HasPrefix(buf.String(),
		`level=ERROR msg="Could not read config, return empty value instead." error="decode: `))
	assert.True(t, strings.HasSuffix(buf.String(), " key=config type=int\n"))
}

func TestSetDefault_nil(t *testing.T) {
	defer func() {
		assert.Equal[any](t, "cannot set nil Store as default", recover())
	}()

	settings.SetDefault(nil)
	t.Fail()
}
