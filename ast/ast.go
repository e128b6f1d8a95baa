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

// Package ast is the sum-of-products tree a parsed dal source file is
// turned into: a single Root holding a list of top-level items, down
// through function bodies, statements, expressions and types. Every node
// owns its children exclusively; there are no shared subtrees and no
// cycles (spec.md §3, "Ownership invariants").
package ast

import "github.com/dal-lang/dalc/source"

// Node is implemented by every AST node. Span is the merge of the spans
// of the node's first and last constituent token (spec.md §4.2).
type Node interface {
	Span() source.Span
}

// OwnerID is a weak, non-owning handle from a Root to the imports.Entry
// that owns it. It is a plain arena index (see internal/arena.Untyped):
// ast does not import the imports package, so the handle is represented
// here as a bare integer and resolved back to an *imports.Entry by the
// imports package itself. Upgrading it is never required while walking
// the tree, only when formatting a diagnostic or resolving a symbol
// (spec.md §9, "Interior mutability" / "weak non-owning handle").
type OwnerID uint32

// Nil reports whether this is the zero/absent owner handle.
func (id OwnerID) Nil() bool { return id == 0 }

// Item is a top-level member of a Root: FnDef, ExternBlock, or Import.
// Per SPEC_FULL.md §13 (open question §9.3), comments are filtered out
// before the parser ever sees them, so Comment is not an Item variant.
type Item interface {
	Node
	itemNode()
}

// Visibility is a function or prototype's exposure outside its own file.
type Visibility int

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "pub"
	}
	return "priv"
}
