// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package commands

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes the value to w in the given format.
func render(w io.Writer, format string, value any) error {
	switch format {
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}

		return errors.Wrap(encoder.Close(), "encoding yaml")
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return errors.Wrap(encoder.Encode(value), "encoding json")
	}
}

// parseValue parses a command line argument as a YAML value,
// so `8080` is a number, `true` is a boolean and `[a, b]` is a sequence.
func parseValue(arg string) (any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(arg), &value); err != nil {
		return nil, errors.Wrapf(err, "parsing value %q", arg)
	}

	return value, nil
}
