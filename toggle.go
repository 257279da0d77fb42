// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"github.com/nil-go/settings/internal/maps"
)

// enabledKey is the flag inside a node that tells whether the node is enabled.
const enabledKey = "enabled"

// Enable sets the given key to true.
// If the key holds a node, it sets the `enabled` field of the node instead,
// so other fields of the node are kept.
func (s *Store) Enable(key string) error {
	return s.setEnabled(key, true)
}

// Disable sets the given key to false.
// If the key holds a node, it sets the `enabled` field of the node instead,
// so other fields of the node are kept.
func (s *Store) Disable(key string) error {
	return s.setEnabled(key, false)
}

// Enabled reports whether the given key is enabled.
// For a node with the `enabled` field, it is the truthiness of that field.
// Otherwise it is the truthiness of the value itself, so any node is enabled
// and an absent key is not.
func (s *Store) Enabled(key string) (bool, error) {
	value, err := s.lookup(key)
	if err != nil {
		return false, err
	}

	if node, ok := value.(map[string]any); ok {
		if flag, ok := node[enabledKey]; ok {
			return truthy(flag), nil
		}
	}

	return truthy(value), nil
}

// Disabled is the negation of [Store.Enabled].
func (s *Store) Disabled(key string) (bool, error) {
	enabled, err := s.Enabled(key)
	if err != nil {
		return false, err
	}

	return !enabled, nil
}

func (s *Store) setEnabled(key string, enabled bool) error {
	s.nocopy.Check()

	path, err := s.split(key)
	if err != nil {
		return err
	}
	if current, _ := maps.Lookup(s.values, path); isNode(current) {
		path = append(path, enabledKey)
	}
	maps.Insert(s.values, path, enabled)

	return nil
}

func isNode(value any) bool {
	node, ok := value.(map[string]any)

	return ok && node != nil
}
