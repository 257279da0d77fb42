// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import "errors"

var (
	// ErrInvalidKey is returned when the key is empty or has an empty segment, e.g. `a..b`.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidArgument is returned when Merge is called with neither a map[string]any nor a *Store.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNilLoader is returned when Load is called with a nil Loader.
	ErrNilLoader = errors.New("cannot load config from nil loader")
)
