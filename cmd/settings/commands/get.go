// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newGetCmd(f *flags) *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a key",
		Long: `Print the value of a key.

Falsy values (false, 0, "" and null) are treated like absent keys
and print the --default value instead.`,
		Example: `  settings get server.port
  settings get server.host --default localhost`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.load(cmd)
			if err != nil {
				return err
			}

			var fallback any
			if cmd.Flags().Changed("default") {
				if fallback, err = parseValue(defaultValue); err != nil {
					return err
				}
			}

			value, err := store.GetOr(args[0], fallback)
			if err != nil {
				return errors.Wrapf(err, "getting %s", args[0])
			}

			return render(cmd.OutOrStdout(), f.output, value)
		},
	}
	cmd.Flags().StringVar(&defaultValue, "default", "", "value printed if the key is absent or falsy")

	return cmd
}

func newHasCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "has KEY",
		Short: "Print whether a key holds a non-null value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.load(cmd)
			if err != nil {
				return err
			}

			has, err := store.Has(args[0])
			if err != nil {
				return errors.Wrapf(err, "checking %s", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), has)

			return err
		},
	}
}

func newEnabledCmd(f *flags, enabled bool) *cobra.Command {
	use, short := "enabled KEY", "Print whether a key is enabled"
	if !enabled {
		use, short = "disabled KEY", "Print whether a key is disabled"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := f.load(cmd)
			if err != nil {
				return err
			}

			check := store.Enabled
			if !enabled {
				check = store.Disabled
			}
			result, err := check(args[0])
			if err != nil {
				return errors.Wrapf(err, "checking %s", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

			return err
		},
	}
}
