// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/settings/internal/maps"
)

// Unmarshal decodes the value under the given key into the object pointed to by target.
// The whole tree is decoded if key is empty.
//
// Unlike [Store.GetOr], falsy values are decoded as they are.
// It supports the `settings` tag (see [WithTagName]) on struct fields.
func (s *Store) Unmarshal(key string, target any) error {
	s.nocopy.Check()

	var value any = s.values
	if key != "" {
		path, err := s.split(key)
		if err != nil {
			return err
		}
		value, _ = maps.Lookup(s.values, path)
	}

	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       s.decodeHook,
			TagName:          s.tagName,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(value); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

var defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
