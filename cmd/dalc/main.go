// Copyright 2026 The dalc authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dalc is the front-end driver: it wires the tokenizer, parser,
// import resolver, and semantic pre-analyzer together behind a small
// cobra CLI (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is stamped at release time; it has no meaning in a checkout
// built straight from source.
var version = "0.0.0-dev"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// Either the build command has already rendered a diagnostic, or
		// cobra has printed the error and usage; match spec.md §6's "any
		// other argv shape exits 1 with usage printed."
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dalc",
		Short:         "dalc is the front-end compiler for the dal systems language",
		SilenceUsage:  false,
		SilenceErrors: false,
	}
	root.AddCommand(newBuildCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the compiler version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
