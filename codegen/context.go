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

// Package codegen holds the single code-generation context the rest of
// the front-end shares (spec.md §3, "Function table entry": "the
// code-generation context holds two global vectors ... plus a
// name-keyed map for globally visible (pub) functions"). IR emission
// itself is out of scope (spec.md §1); this package only owns the
// shared tables that pre-analysis populates.
package codegen

import (
	"github.com/dal-lang/dalc/imports"
	"github.com/dal-lang/dalc/internal/intern"
	"github.com/dal-lang/dalc/report"
	"github.com/dal-lang/dalc/sema"
)

// Context is owned and mutated only from the main thread (spec.md §5,
// "Shared resources"). There is exactly one per compilation.
type Context struct {
	Types   *sema.TypeTable
	Imports *imports.Table

	// Names interns every function and parameter spelling pre-analysis
	// sees, so a later pass can compare identifiers by intern.ID rather
	// than repeated string comparison (spec.md §9, "dal" has no
	// generics or macros to expand identifier churn, but the front-end
	// still re-sees the same handful of names — "main", "write", common
	// parameter names — across every file in a compilation).
	Names *intern.Table

	// FnProtos and FnDefs are discovery-order vectors of every
	// prototype and definition seen so far, regardless of visibility.
	FnProtos []*imports.FuncEntry
	FnDefs   []*imports.FuncEntry

	// Global is the name-keyed table of pub-visible functions,
	// populated during semantic pre-analysis (spec.md §4.4, step e).
	Global map[string]*imports.FuncEntry

	// nextNodeID backs a side table of per-node codegen annotations a
	// later pass can key by node without mutating AST nodes directly
	// (spec.md §9, "Interior mutability"). No such pass exists yet, so
	// nothing currently reads the ids this hands out; it exists so one
	// can be added without reworking how nodes are identified.
	nextNodeID uint64
}

// New creates a Context over an already-populated import table.
func New(importTable *imports.Table) *Context {
	return &Context{
		Types:   sema.NewTypeTable(),
		Imports: importTable,
		Global:  make(map[string]*imports.FuncEntry),
		Names:   &intern.Table{},
	}
}

// NextNodeID hands out a fresh id, unique within this Context.
func (c *Context) NextNodeID() uint64 {
	c.nextNodeID++
	return c.nextNodeID
}

// Analyze runs the semantic pre-analyzer (spec.md §4.4) over every
// import currently in c.Imports, accumulating type-resolution errors
// into handler rather than aborting. The discovered extern prototypes
// are appended to c.FnProtos in discovery order.
func (c *Context) Analyze(handler *report.Handler) {
	discovered := sema.Analyze(c.Types, c.Imports, c.Global, c.Names, handler)
	c.FnProtos = append(c.FnProtos, discovered...)
}
