// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env

// WithPrefix provides the prefix used when loading environment variables.
// Only environment variables with names that start with the prefix will be loaded,
// and the prefix is trimmed from the names.
//
// By default, it has no prefix which loads all environment variables.
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithNameSplitter provides the function used to split environment variable names into nested keys.
// The name passed to the splitter has the prefix trimmed.
// If it returns a path with an empty segment, the variable will be ignored.
//
// By default, the names are lowered and split by `_`,
// e.g. "SERVER_HOST" is split into "server" and "host".
func WithNameSplitter(splitter func(string) []string) Option {
	return func(options *options) {
		options.splitter = splitter
	}
}

type (
	// Option configures an Env with specific options.
	Option  func(*options)
	options Env
)
