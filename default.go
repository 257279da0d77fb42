// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"reflect"
	"sync/atomic"
)

// Get decodes the value under the given key of the default Store into T.
// It returns zero value if there is an error.
func Get[T any](key string) T { //nolint:ireturn
	store := Default()

	var value T
	if err := store.Unmarshal(key, &value); err != nil {
		store.logger.Error(
			"Could not read config, return empty value instead.",
			"error", err,
			"key", key,
			"type", reflect.TypeOf(value),
		)

		return *new(T)
	}

	return value
}

// Unmarshal decodes the value under the given key of the default Store
// into the object pointed to by target.
func Unmarshal(key string, target any) error {
	return Default().Unmarshal(key, target)
}

// Default returns the default Store.
func Default() *Store {
	return defaultStore.Load()
}

// SetDefault makes s the default [Store].
// After this call, the settings package's top functions (e.g. settings.Get)
// will read from s.
//
// It panics if s is nil.
func SetDefault(s *Store) {
	if s == nil {
		panic("cannot set nil Store as default")
	}

	defaultStore.Store(s)
}

var defaultStore atomic.Pointer[Store] //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	defaultStore.Store(New(nil))
}
