// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/settings/internal"
	"github.com/nil-go/settings/internal/maps"
)

// Store holds a tree of settings.
//
// To create a new Store, call [New].
type Store struct {
	nocopy internal.NoCopy[Store]

	// Options.
	logger     *slog.Logger
	decodeHook mapstructure.DecodeHookFunc
	tagName    string
	delimiter  string

	values map[string]any
}

// New creates a new Store with the given values and Option(s).
//
// The Store adopts values as its root without copying it,
// so later changes made through the Store are visible in values.
// If values is nil, the Store starts with an empty tree.
func New(values map[string]any, opts ...Option) *Store {
	option := &options{values: values}
	for _, opt := range opts {
		opt(option)
	}
	if option.values == nil {
		option.values = make(map[string]any)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	if option.delimiter == "" {
		option.delimiter = "."
	}
	if option.tagName == "" {
		option.tagName = "settings"
	}
	if option.decodeHook == nil {
		option.decodeHook = defaultDecodeHook
	}

	return (*Store)(option)
}

// Get returns the value under the given key.
// It returns nil if the key is not found or the value is falsy, see [Store.GetOr].
func (s *Store) Get(key string) (any, error) {
	return s.GetOr(key, nil)
}

// GetOr returns the value under the given key, or defaultValue if there is none.
//
// A falsy value (nil, false, numeric zero, NaN or "") resolves to defaultValue
// the same way as an absent key does. Use [Store.Has] to tell a falsy value
// from an absent one.
func (s *Store) GetOr(key string, defaultValue any) (any, error) {
	value, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	if !truthy(value) {
		return defaultValue, nil
	}

	return value, nil
}

// Has reports whether the key holds a non-nil value, including false and zero.
// Typed nils such as a nil slice or pointer count as nil.
func (s *Store) Has(key string) (bool, error) {
	value, err := s.lookup(key)
	if err != nil {
		return false, err
	}

	return !isNil(value), nil
}

// Set sets the value under the given key.
//
// The intermediate segments of the key are created as empty nodes
// if they are absent or hold a non-node value. The existing value
// under the key is replaced, even if it is a node.
func (s *Store) Set(key string, value any) error {
	s.nocopy.Check()

	path, err := s.split(key)
	if err != nil {
		return err
	}
	maps.Insert(s.values, path, value)

	return nil
}

// Merge deep merges values into the Store.
// The values must be either a map[string]any or a *Store.
//
// For each key in values:
//   - if the Store holds a sequence under the key, the value is appended to it
//     (or all its elements, if the value is a sequence as well);
//   - if both sides hold a node, they are merged recursively;
//   - otherwise the Store takes a copy of the value.
//
// Keys that only exist in the Store are left untouched.
func (s *Store) Merge(values any) error {
	s.nocopy.Check()

	var src map[string]any
	switch v := values.(type) {
	case map[string]any:
		src = v
	case *Store:
		if v == nil {
			return fmt.Errorf("%w: cannot merge nil *Store", ErrInvalidArgument)
		}
		src = v.values
	default:
		return fmt.Errorf("%w: cannot merge %T", ErrInvalidArgument, values)
	}
	maps.Merge(s.values, src)

	return nil
}

// Values returns a copy of the whole tree.
func (s *Store) Values() map[string]any {
	s.nocopy.Check()

	return maps.Clone(s.values).(map[string]any) //nolint:forcetypeassert
}

func (s *Store) lookup(key string) (any, error) {
	s.nocopy.Check()

	path, err := s.split(key)
	if err != nil {
		return nil, err
	}
	value, _ := maps.Lookup(s.values, path)

	return value, nil
}

func (s *Store) split(key string) ([]string, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}

	path := strings.Split(key, s.delimiter)
	if slices.Contains(path, "") {
		return nil, fmt.Errorf("%w: key %q has empty segment", ErrInvalidKey, key)
	}

	return path, nil
}
