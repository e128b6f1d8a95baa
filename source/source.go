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

// Package source owns the raw text of a dal source file and the
// line-offset table the rest of the front-end uses to turn byte offsets
// into human-readable line/column positions.
package source

import (
	"fmt"
	"sort"
)

// File owns the text of a single source file plus the table of line-start
// byte offsets the lexer builds as it scans. Path and DisplayName are fixed
// at construction and never change afterward.
type File struct {
	path        string
	displayName string
	text        []byte

	// lines[i] is the byte offset at which line i+1 (1-indexed) begins.
	// lines[0] is always 0.
	lines []int
}

// New creates a File over the given text. The line-offset table starts out
// containing only the first line; call AddLine as '\n' bytes are scanned.
func New(path, displayName string, text []byte) *File {
	return &File{
		path:        path,
		displayName: displayName,
		text:        text,
		lines:       []int{0},
	}
}

// Path returns the source-relative path this file was loaded from.
func (f *File) Path() string { return f.path }

// DisplayName returns the name used in diagnostics (usually equal to Path).
func (f *File) DisplayName() string { return f.displayName }

// Text returns the file's raw byte contents. Callers must not mutate it.
func (f *File) Text() []byte { return f.text }

// AddLine records that a new line begins at the given byte offset. Offsets
// must be added in strictly increasing order; this mirrors how the lexer
// discovers them while scanning left to right.
func (f *File) AddLine(offset int) {
	if offset < 0 || offset > len(f.text) {
		panic(fmt.Sprintf("source: invalid line offset %d for file of length %d", offset, len(f.text)))
	}
	last := f.lines[len(f.lines)-1]
	if offset <= last {
		panic(fmt.Sprintf("source: line offset %d is not greater than previous offset %d", offset, last))
	}
	f.lines = append(f.lines, offset)
}

// Pos is a resolved, human-readable source position.
type Pos struct {
	Line   int // 1-indexed
	Col    int // 1-indexed, in bytes (dal source is restricted to ASCII punctuation so this never needs rune-awareness at the lexer/parser layer)
	Offset int // 0-indexed byte offset
}

// Locate resolves a byte offset into a line/column position.
func (f *File) Locate(offset int) Pos {
	line := sort.Search(len(f.lines), func(i int) bool {
		return f.lines[i] > offset
	})
	lineStart := f.lines[line-1]
	return Pos{
		Line:   line,
		Col:    offset - lineStart + 1,
		Offset: offset,
	}
}

// LineText returns the raw text of the given 1-indexed line, without its
// trailing newline.
func (f *File) LineText(line int) string {
	if line < 1 || line > len(f.lines) {
		return ""
	}
	start := f.lines[line-1]
	end := len(f.text)
	if line < len(f.lines) {
		end = f.lines[line]
	}
	text := f.text[start:end]
	for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
		text = text[:len(text)-1]
	}
	return string(text)
}
