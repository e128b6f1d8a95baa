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

package report

import (
	"fmt"
	"io"

	"github.com/rivo/uniseg"
)

// ANSI styling, trimmed down from the teacher's multi-level stylesheet
// (experimental/report/stylesheet.go) to the single-span format spec.md
// §6 specifies.
const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
)

// Renderer prints Diagnostics in the format spec.md §6 specifies:
//
//	<path>:<line>:<col> Error: <msg>
//	<source line excerpt>
//	<spaces...>^
//
// Colorize gates ANSI escapes; the caller (cmd/dalc) decides Colorize by
// resolving --color against github.com/mattn/go-isatty.
type Renderer struct {
	Colorize bool
}

// Render writes d to out.
func (r Renderer) Render(out io.Writer, d *Diagnostic) {
	pos := d.File.Locate(d.Span.StartOffset)
	header := fmt.Sprintf("%s:%d:%d %s: %s", d.File.DisplayName(), pos.Line, pos.Col, d.Severity, d.Message)
	if r.Colorize {
		fmt.Fprintf(out, "%s%s%s%s\n", ansiBold, ansiRed, header, ansiReset)
	} else {
		fmt.Fprintln(out, header)
	}

	line := d.File.LineText(pos.Line)
	fmt.Fprintln(out, line)

	caretCol := caretColumn(line, pos.Col)
	fmt.Fprintln(out, spaces(caretCol)+"^")
}

// caretColumn converts a 1-indexed byte column into a 0-indexed display
// column, accounting for multi-width runes in the prefix via
// uniseg.StringWidth (spec.md §6 diagnostic format; mirrors the
// teacher's own use of uniseg for column math in experimental/report).
func caretColumn(line string, col int) int {
	if col < 1 {
		return 0
	}
	prefixLen := col - 1
	if prefixLen > len(line) {
		prefixLen = len(line)
	}
	return uniseg.StringWidth(line[:prefixLen])
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
