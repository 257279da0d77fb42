// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package file loads configuration from OS file.
//
// File loads a file with the given path from the OS file system and returns
// a nested map[string]any that is parsed according to the file extension:
// .json with encoding/json, .yaml and .yml with gopkg.in/yaml.v3, .toml with go-toml.
// Files with other extensions are parsed as JSON unless WithUnmarshal is provided.
//
// By default, it returns error while loading if the file is not found.
// IgnoreFileNotExist can override the behavior to return an empty map[string]any.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/nil-go/settings/internal/codec"
)

// File is a Loader that loads configuration from a OS file.
//
// To create a new File, call [New].
type File struct {
	logger         *slog.Logger
	path           string
	unmarshal      func([]byte, any) error
	ignoreNotExist bool
}

// New creates a File with the given path and Option(s).
//
// It panics if the path is empty.
func New(path string, opts ...Option) File {
	if path == "" {
		panic("cannot create File with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("settings.file")
	if option.unmarshal == nil {
		option.unmarshal = codec.Lookup(codec.Unmarshals(), path)
	}

	return File(*option)
}

func (f File) Load() (map[string]any, error) {
	bytes, err := os.ReadFile(f.path)
	switch {
	case f.ignoreNotExist && errors.Is(err, fs.ErrNotExist):
		f.logger.Warn("Config file does not exist.", "file", f.path)

		return make(map[string]any), nil
	case err != nil:
		return nil, fmt.Errorf("read file: %w", err)
	}

	var content any
	if err := f.unmarshal(bytes, &content); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	switch values := content.(type) {
	case nil:
		// An empty file has no settings.
		return make(map[string]any), nil
	case map[string]any:
		f.logger.Debug("Config file has been loaded.", "file", f.path)

		return values, nil
	default:
		return nil, fmt.Errorf("%w: %T", errNotMap, content)
	}
}

func (f File) String() string {
	return "file:" + f.path
}

var errNotMap = errors.New("file content is not a map")
