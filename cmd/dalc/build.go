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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/codegen"
	"github.com/dal-lang/dalc/imports"
	"github.com/dal-lang/dalc/parser"
	"github.com/dal-lang/dalc/report"
	"github.com/dal-lang/dalc/source"
	"github.com/dal-lang/dalc/token"
)

// defaultStdDir is the compiled-in standard-library directory (spec.md
// §6, "Standard-library directory": "a path established at compile time
// the build system baked it in as a constant"). It is a var, not a
// const, so a distribution's build can override it with -ldflags
// -X, the same mechanism that stamps version.
var defaultStdDir = "/usr/local/lib/dal/std"

type buildOptions struct {
	release bool
	static  bool
	strip   bool
	export  string
	name    string
	out     string
	verbose bool
	color   string
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build <source-file>",
		Short: "compile a dal source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(cmd, opts, args[0])
			if errors.Is(err, errExitSilently) {
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.release, "release", false, "optimize")
	flags.BoolVar(&opts.static, "static", false, "link statically")
	flags.BoolVar(&opts.strip, "strip", false, "strip debug symbols")
	flags.StringVar(&opts.export, "export", "exe", "output kind: exe, lib, or obj")
	flags.StringVar(&opts.name, "name", "", "override output name")
	flags.StringVar(&opts.out, "out", "", "override output path")
	flags.BoolVar(&opts.verbose, "verbose", false, "emit intermediate dumps (tokens, AST, phase headers)")
	flags.StringVar(&opts.color, "color", "auto", "ANSI coloring of diagnostics: auto, on, or off")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions, srcPath string) error {
	switch opts.export {
	case "exe", "lib", "obj":
	default:
		return fmt.Errorf("--export must be one of exe, lib, obj (got %q)", opts.export)
	}
	switch opts.color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("--color must be one of auto, on, off (got %q)", opts.color)
	}

	out := cmd.OutOrStdout()
	renderer := &report.Renderer{Colorize: colorEnabled(opts.color, os.Stdout)}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "dalc: %v\n", err)
		return errExitSilently
	}

	file := source.New(srcPath, srcPath, data)

	if opts.verbose {
		fmt.Fprintln(out, "=== tokenize ===")
	}
	stream, err := token.NewLexer(file).Tokenize()
	if err != nil {
		renderErr(cmd.ErrOrStderr(), renderer, file, err)
		return errExitSilently
	}
	if opts.verbose {
		dumpTokens(out, file, stream)
		fmt.Fprintln(out, "=== parse ===")
	}

	root, err := parser.Parse(file, stream)
	if err != nil {
		renderErr(cmd.ErrOrStderr(), renderer, file, err)
		return errExitSilently
	}
	if opts.verbose {
		fmt.Fprintln(out, ast.Dump(root))
		fmt.Fprintln(out, "=== resolve imports ===")
	}

	rootDir := filepath.Dir(srcPath)
	resolver := imports.NewResolver(rootDir, defaultStdDir)
	table := imports.New(resolver)
	relPath := filepath.Base(srcPath)
	if _, err := table.AddCode(relPath, data); err != nil {
		renderErr(cmd.ErrOrStderr(), renderer, file, err)
		return errExitSilently
	}

	if opts.verbose {
		fmt.Fprintln(out, "=== semantic pre-analysis ===")
	}
	ctx := codegen.New(table)
	handler := report.NewHandler()
	ctx.Analyze(handler)

	if handler.HasErrors() {
		for _, d := range handler.Diagnostics() {
			renderer.Render(cmd.ErrOrStderr(), d)
		}
		return errExitSilently
	}

	return nil
}

// dumpTokens writes one line per significant token (spec.md SPEC_FULL.md
// §12 item 1: "--verbose prints tokens, then the AST dump").
func dumpTokens(w io.Writer, file *source.File, stream token.Stream) {
	for _, t := range stream.Significant() {
		fmt.Fprintf(w, "%s %q @%d:%d\n", t.Kind, t.Text(file), t.Span.StartLine, t.Span.StartCol)
	}
}

// colorEnabled resolves the --color flag against the given file the way
// spec.md §6 describes ("ANSI coloring ... when color is on or
// auto-detected TTY").
func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default: // "auto"
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// errExitSilently is returned by runBuild once a diagnostic has already
// been written to stderr, so main's generic cobra error handling doesn't
// print it a second time.
var errExitSilently = errors.New("")

func renderErr(w io.Writer, r *report.Renderer, file *source.File, err error) {
	var diag *report.Diagnostic
	if errors.As(err, &diag) {
		r.Render(w, diag)
		return
	}
	var lexErr *token.LexError
	if errors.As(err, &lexErr) {
		r.Render(w, &report.Diagnostic{
			File:     file,
			Span:     source.Span{StartLine: lexErr.Pos.Line, StartCol: lexErr.Pos.Col, StartOffset: lexErr.Pos.Offset, EndLine: lexErr.Pos.Line, EndOffset: lexErr.Pos.Offset},
			Severity: report.SeverityError,
			Message:  lexErr.Msg,
		})
		return
	}
	fmt.Fprintf(w, "dalc: %v\n", err)
}
