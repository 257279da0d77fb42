// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package commands implements the CLI commands for settings.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/nil-go/settings"
	"github.com/nil-go/settings/provider/dir"
	"github.com/nil-go/settings/provider/env"
)

// Execute runs the root command with the arguments of the process.
func Execute() error {
	return NewRootCmd().Execute()
}

// flags holds the persistent flags shared by all commands.
type flags struct {
	dir       string
	envPrefix string
	output    string
	verbose   bool
}

// NewRootCmd creates the root command with all sub commands.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Query and edit a tree of settings loaded from a directory",
		Long: `settings loads every JSON, YAML and TOML file of a directory into
a tree of settings keyed by file name, e.g. server.yaml is loaded under
"server", and runs one operation against it.

Changes are printed to stdout and never written back to the directory.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&f.dir, "dir", "d", filepath.Join(xdg.ConfigHome, "settings"),
		"directory to load settings from")
	cmd.PersistentFlags().StringVar(&f.envPrefix, "env-prefix", "",
		"also load environment variables with this prefix, e.g. APP_ loads APP_SERVER_HOST as server.host")
	cmd.PersistentFlags().StringVarP(&f.output, "output", "o", formatJSON,
		"output format: json, yaml")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false,
		"enable debug logging")

	cmd.AddCommand(
		newGetCmd(f),
		newHasCmd(f),
		newEnabledCmd(f, true),
		newEnabledCmd(f, false),
		newSetCmd(f),
		newToggleCmd(f, true),
		newToggleCmd(f, false),
		newMergeCmd(f),
	)

	return cmd
}

// load creates a Store from the files of the configured directory.
func (f *flags) load(cmd *cobra.Command) (*settings.Store, error) {
	if f.output != formatJSON && f.output != formatYAML {
		return nil, errors.Newf("unsupported output format %q", f.output)
	}

	logger := f.logger(cmd)
	store := settings.New(nil, settings.WithLogger(logger))
	if err := store.Load(dir.New(os.DirFS(f.dir), ".", dir.WithLogger(logger))); err != nil {
		return nil, errors.Wrapf(err, "loading settings from %s", f.dir)
	}
	if f.envPrefix != "" {
		if err := store.Load(env.New(env.WithPrefix(f.envPrefix))); err != nil {
			return nil, errors.Wrap(err, "loading settings from environment")
		}
	}

	return store, nil
}

// logger writes warnings to stderr, or debug messages as well with --verbose.
func (f *flags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
