// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/nil-go/settings/provider/file"
)

func newSetCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set the value of a key and print the settings",
		Long: `Set the value of a key and print the resulting settings.

VALUE is parsed as YAML, so 8080 is a number, true is a boolean
and [a, b] is a list.`,
		Example: `  settings set server.port 9090
  settings set server.middlewares "[logging, tracing]"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.load(cmd)
			if err != nil {
				return err
			}

			value, err := parseValue(args[1])
			if err != nil {
				return err
			}
			if err := store.Set(args[0], value); err != nil {
				return errors.Wrapf(err, "setting %s", args[0])
			}

			return render(cmd.OutOrStdout(), f.output, store.Values())
		},
	}
}

func newToggleCmd(f *flags, enable bool) *cobra.Command {
	use, short := "enable KEY", "Enable a key and print the settings"
	if !enable {
		use, short = "disable KEY", "Disable a key and print the settings"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

If the key holds a node, its "enabled" field is set instead,
so other fields of the node are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.load(cmd)
			if err != nil {
				return err
			}

			toggle := store.Enable
			if !enable {
				toggle = store.Disable
			}
			if err := toggle(args[0]); err != nil {
				return errors.Wrapf(err, "toggling %s", args[0])
			}

			return render(cmd.OutOrStdout(), f.output, store.Values())
		},
	}
}

func newMergeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE...",
		Short: "Deep merge files into the settings and print the settings",
		Long: `Deep merge files into the settings and print the resulting settings.

Lists are concatenated, nested tables are merged recursively
and other values are replaced. Files are merged in the given order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.load(cmd)
			if err != nil {
				return err
			}

			for _, path := range args {
				loader := file.New(path, file.WithLogger(f.logger(cmd)))
				if err := store.Load(loader); err != nil {
					return errors.Wrapf(err, "merging %s", path)
				}
			}

			return render(cmd.OutOrStdout(), f.output, store.Values())
		},
	}
}
