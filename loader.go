// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"fmt"

	"github.com/nil-go/settings/internal/maps"
)

// Loader is the interface that wraps the basic Load method.
//
// Load loads configuration and returns as a nested map[string]any.
// It requires that the string keys should be nested like `{parent: {child: {key: 1}}}`.
type Loader interface {
	Load() (map[string]any, error)
}

// Load merges the configuration loaded by the given loader into the Store,
// the same way as [Store.Merge] does.
// Values from the loader take precedence over the existing ones.
func (s *Store) Load(loader Loader) error {
	s.nocopy.Check()

	if loader == nil {
		return ErrNilLoader
	}

	values, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	maps.Merge(s.values, values)
	s.logger.Debug("Configuration has been loaded.", "loader", loader)

	return nil
}
