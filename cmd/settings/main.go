// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package main is the entry point for the settings CLI.
package main

import (
	"fmt"
	"os"

	"github.com/nil-go/settings/cmd/settings/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
