// Copyright 2025 go-xsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command xsimd generates the register table of the xsimd package and
// reports which instruction sets the running CPU supports.
//
// Usage:
//
//	xsimd gen registers --output register_table.go --package xsimd
//	xsimd info [--json]
//
// Or via go:generate, from the xsimd package directory:
//
//	//go:generate go run ../cmd/xsimd gen registers --output register_table.go --package xsimd
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "xsimd",
		Short:         "Register table generator and instruction set report for xsimd",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	gen := &cobra.Command{
		Use:   "gen",
		Short: "Generate source files",
	}
	gen.AddCommand(newGenRegistersCmd())
	root.AddCommand(gen, newInfoCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "xsimd", version)
		},
	})
	return root
}

const version = "v0.1.0"
