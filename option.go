// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"log/slog"

	"github.com/go-viper/mapstructure/v2"
)

// WithDelimiter provides the delimiter used to split keys into segments.
//
// The default delimiter is `.`, which makes keys like `parent.child.key`.
func WithDelimiter(delimiter string) Option {
	return func(options *options) {
		options.delimiter = delimiter
	}
}

// WithLogger provides the slog.Logger for Store.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithTagName provides the tag name that [Store.Unmarshal] reads for the field names.
// The tag name is `settings` by default.
func WithTagName(tagName string) Option {
	return func(options *options) {
		options.tagName = tagName
	}
}

// WithDecodeHook provides the decode hook for [Store.Unmarshal].
//
// The default decode hook converts strings to time.Duration, to slices split by `,`,
// and to types implementing encoding.TextUnmarshaler.
func WithDecodeHook(decodeHook mapstructure.DecodeHookFunc) Option {
	return func(options *options) {
		options.decodeHook = decodeHook
	}
}

type (
	// Option configures a Store with specific options.
	Option  func(*options)
	options Store
)
