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

package imports

import (
	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/internal/arena"
)

// Table owns every Entry reached from a root source file, keyed by its
// source-relative path. Entries are allocated in an internal/arena.Arena
// so that an ast.Root's weak Owner back-reference (spec.md §9) can be a
// plain integer rather than a real pointer.
type Table struct {
	arena arena.Arena[Entry]
	byPath map[string]arena.Pointer[Entry]
	order  []arena.Pointer[Entry]

	resolver *Resolver

	sawPubMain      bool
	bootstrapLoaded bool
	depth           int
}

// New creates an empty Table. resolver supplies the search-path order
// used to locate import targets (spec.md §4.3). Passing a nil resolver
// is valid for tests that only ever call AddCode on self-contained
// sources with no import items.
func New(resolver *Resolver) *Table {
	return &Table{
		byPath:   make(map[string]arena.Pointer[Entry]),
		resolver: resolver,
	}
}

// Lookup returns the entry for path, if one has been loaded.
func (t *Table) Lookup(path string) (*Entry, bool) {
	ptr, ok := t.byPath[path]
	if !ok {
		return nil, false
	}
	return ptr.In(&t.arena), true
}

// EntryAt resolves a weak ast.OwnerID back-reference to its Entry
// (spec.md §9: "upgraded only during error formatting and semantic
// lookups"). It panics if id is nil; an id not allocated by this Table
// yields an arbitrary entry or panics, exactly as arena.Pointer.In does.
func (t *Table) EntryAt(id ast.OwnerID) *Entry {
	return arena.Pointer[Entry](id).In(&t.arena)
}

// Entries returns every loaded entry in insertion order (spec.md §5,
// "Ordering": "semantic pre-analysis iterates the import table in
// insertion order").
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, len(t.order))
	for i, ptr := range t.order {
		out[i] = ptr.In(&t.arena)
	}
	return out
}

func (t *Table) insert(path string, e Entry) (*Entry, ast.OwnerID) {
	ptr := t.arena.New(e)
	t.byPath[path] = ptr
	t.order = append(t.order, ptr)
	return ptr.In(&t.arena), ast.OwnerID(ptr)
}
