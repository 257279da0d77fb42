// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package codec selects the function parsing a configuration file by its extension.
package codec

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Unmarshals returns a new map from file extension to the function parsing it.
func Unmarshals() map[string]func([]byte, any) error {
	return map[string]func([]byte, any) error{
		".json": json.Unmarshal,
		".yaml": yaml.Unmarshal,
		".yml":  yaml.Unmarshal,
		".toml": toml.Unmarshal,
	}
}

// Lookup returns the function parsing the file with the given path from unmarshals.
// Extensions are case-insensitive, and files with unknown extension are parsed as JSON.
func Lookup(unmarshals map[string]func([]byte, any) error, file string) func([]byte, any) error {
	if unmarshal, ok := unmarshals[strings.ToLower(path.Ext(file))]; ok {
		return unmarshal
	}

	return json.Unmarshal
}
