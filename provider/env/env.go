// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env loads configuration from environment variables.
//
// Env loads the environment variables with the given prefix and returns a nested
// map[string]any by trimming the prefix, lowering the case and splitting the names
// by `_`. E.g. with prefix `APP_`, the environment variable `APP_SERVER_HOST=localhost`
// is loaded as `{server: {host: "localhost"}}`.
// The environment variables with empty value are treated as unset.
//
// The default behavior can be changed with following options:
//   - WithPrefix enables loads environment variables with the given prefix in the name.
//   - WithNameSplitter provides the function splitting environment variable names to nested keys.
package env

import (
	"os"
	"slices"
	"strings"

	"github.com/nil-go/settings/internal/maps"
)

// Env is a Loader that loads configuration from environment variables.
//
// To create a new Env, call [New].
type Env struct {
	_        [0]func() // Ensure it's incomparable.
	prefix   string
	splitter func(string) []string
}

// New creates an Env with the given Option(s).
func New(opts ...Option) Env {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.splitter == nil {
		option.splitter = func(name string) []string {
			return strings.Split(strings.ToLower(name), "_")
		}
	}

	return Env(*option)
}

func (e Env) Load() (map[string]any, error) {
	values := make(map[string]any)
	for _, env := range os.Environ() {
		name, value, _ := strings.Cut(env, "=")
		if value == "" {
			// The environment variable with empty value is treated as unset.
			continue
		}
		name, ok := strings.CutPrefix(name, e.prefix)
		if !ok {
			continue
		}

		path := e.splitter(name)
		if len(path) == 0 || slices.Contains(path, "") {
			continue
		}
		maps.Insert(values, path, value)
	}

	return values, nil
}

func (e Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}
