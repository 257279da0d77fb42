// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package dir loads configuration from the files of a directory.
//
// Dir reads all top-level files of the given directory (sub-directories are not
// visited) and returns a map[string]any with an entry per file. The key is
// derived from the file name, e.g. `server.yaml` is loaded under `server`,
// and the value is the parsed file content.
//
// By default, files with extension .json, .yaml, .yml and .toml are loaded
// (parsed with encoding/json, gopkg.in/yaml.v3 and go-toml respectively),
// and hidden files are skipped. The default behavior can be changed with
// following options:
//   - WithFilter or WithFilterFunc selects the files and derives their names.
//   - WithKeyMap maps the name of a file to its key.
//   - WithResolve transforms the parsed content of a file.
//   - WithUnmarshal provides the parser for a file extension.
package dir

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/nil-go/settings/internal/codec"
)

// Dir is a Loader that loads configuration from the files of a directory.
//
// To create a new Dir, call [New].
type Dir struct {
	logger     *slog.Logger
	fs         fs.FS
	path       string
	filter     func(file string) string
	keyMap     func(name, path string) string
	resolve    func(content any) any
	unmarshals map[string]func([]byte, any) error
}

// New creates a Dir with the given fs.FS, directory path and Option(s).
// If fs is nil, the directory is resolved against the current working directory.
//
// It panics if the path is empty.
func New(fs fs.FS, path string, opts ...Option) Dir {
	if path == "" {
		panic("cannot create Dir with empty path")
	}

	option := &options{
		fs:         fs,
		path:       path,
		unmarshals: codec.Unmarshals(),
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("settings.dir")
	if option.filter == nil {
		option.filter = regexpFilter(defaultFilter)
	}

	return Dir(*option)
}

func (d Dir) Load() (map[string]any, error) {
	dfs := d.fs
	if dfs == nil {
		// Ignore error: It uses whatever returned.
		wd, _ := os.Getwd()
		dfs = os.DirFS(wd)
	}

	entries, err := fs.ReadDir(dfs, d.path)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	type file struct {
		key     string
		path    string
		content any
	}
	var files []*file
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := d.filter(entry.Name())
		if name == "" {
			d.logger.Debug("Skip file which does not match the filter.", "file", entry.Name())

			continue
		}
		filePath := path.Join(d.path, entry.Name())
		key := name
		if d.keyMap != nil {
			key = d.keyMap(name, filePath)
		}
		files = append(files, &file{key: key, path: filePath})
	}

	var group errgroup.Group
	for _, f := range files {
		group.Go(func() error {
			content, err := d.read(dfs, f.path)
			if err != nil {
				return err
			}
			f.content = content

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// fs.ReadDir sorts entries by file name, so later files win on duplicated keys.
	values := make(map[string]any, len(files))
	for _, f := range files {
		values[f.key] = f.content
	}
	d.logger.Debug("Configuration files have been loaded.", "dir", d.path, "files", len(files))

	return values, nil
}

func (d Dir) read(dfs fs.FS, filePath string) (any, error) {
	bytes, err := fs.ReadFile(dfs, filePath)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", filePath, err)
	}

	var content any
	if err := codec.Lookup(d.unmarshals, filePath)(bytes, &content); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", filePath, err)
	}

	if d.resolve != nil {
		content = d.resolve(content)
	}

	return content, nil
}

func (d Dir) String() string {
	return "dir:" + d.path
}

func regexpFilter(pattern *regexp.Regexp) func(string) string {
	return func(file string) string {
		match := pattern.FindStringSubmatch(file)
		switch {
		case match == nil:
			return ""
		case len(match) > 1 && match[1] != "":
			return match[1]
		default:
			return match[0]
		}
	}
}

var defaultFilter = regexp.MustCompile(`^([^.].*)\.(json|ya?ml|toml)$`) //nolint:gochecknoglobals

