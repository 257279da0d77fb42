// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dir

import (
	"log/slog"
	"regexp"
	"strings"
)

// WithFilter provides the pattern that file names must match to be loaded.
// The first capturing group of the pattern, if any, is the name of the file,
// otherwise the whole match is.
//
// The default pattern is `^([^.].*)\.(json|ya?ml|toml)$`,
// which names `server.yaml` as `server`.
func WithFilter(pattern *regexp.Regexp) Option {
	return func(options *options) {
		options.filter = regexpFilter(pattern)
	}
}

// WithFilterFunc provides the function that returns the name of the given file.
// The file is skipped if the function returns an empty string.
func WithFilterFunc(filter func(file string) string) Option {
	return func(options *options) {
		options.filter = filter
	}
}

// WithKeyMap provides the function that maps the name and the path of a file
// to the key of its content.
//
// By default, the key is the name of the file.
func WithKeyMap(keyMap func(name, path string) string) Option {
	return func(options *options) {
		options.keyMap = keyMap
	}
}

// WithResolve provides the function that transforms the parsed content of each file.
func WithResolve(resolve func(content any) any) Option {
	return func(options *options) {
		options.resolve = resolve
	}
}

// WithUnmarshal provides the function used to parse files with the given extension, e.g. `.json`.
// Extensions are case-insensitive.
//
// The defaults are json.Unmarshal for .json, yaml.Unmarshal for .yaml and .yml,
// and toml.Unmarshal for .toml. Files with other extensions are parsed as JSON.
func WithUnmarshal(ext string, unmarshal func([]byte, any) error) Option {
	return func(options *options) {
		options.unmarshals[strings.ToLower(ext)] = unmarshal
	}
}

// WithLogger provides the slog.Logger for Dir loader.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a Dir with specific options.
	Option  func(options *options)
	options Dir
)
