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

// Package imports resolves and caches the files reachable from a root
// dal source file. Entries are created lazily and cached under their
// source-relative path; a path is visited at most once for its whole
// lifetime, which is also how import cycles terminate (spec.md §4.3).
package imports

import (
	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/source"
)

// CallConv is a function's calling convention; C is the only one dal's
// grammar can currently express (spec.md §3, "Function table entry").
type CallConv int

const (
	CCallConv CallConv = iota
)

func (c CallConv) String() string {
	return "C"
}

// FuncEntry is the per-function record spec.md §3 calls a "function
// table entry": the prototype, whether it came from an extern block,
// its calling convention, and the entry that owns it.
type FuncEntry struct {
	Proto    *ast.FnProto
	IsExtern bool
	CallConv CallConv
	Owner    *Entry
}

// Entry is a single import-table row: a fully parsed source file plus
// its per-file function table (spec.md §3, "Import table").
type Entry struct {
	Path string
	File *source.File
	Root *ast.Root

	// Funcs is keyed by function name and populated by the sema
	// package's pre-analysis pass, not by the resolver itself.
	Funcs map[string]*FuncEntry
}
