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

package sema

import (
	"strconv"

	"github.com/dal-lang/dalc/ast"
	"github.com/dal-lang/dalc/imports"
	"github.com/dal-lang/dalc/internal/intern"
	"github.com/dal-lang/dalc/report"
	"github.com/dal-lang/dalc/source"
)

// Analyze walks every import in table, in insertion order (spec.md §5,
// "Ordering": "semantic pre-analysis iterates the import table in
// insertion order"), and processes each ExternBlock's prototypes
// (spec.md §4.4): resolving parameter and return types against types,
// building a imports.FuncEntry, inserting it into the owning entry's
// per-file function table, and — if the prototype is Public — into
// global as well. names interns every prototype and parameter spelling
// it sees, so a later codegen pass can compare identifiers by ID
// instead of repeated string comparison.
//
// FnDef prototypes are deliberately not touched here: spec.md §4.4
// defers them to "a later pass not covered here", out of this
// specification's scope. Analyze reports type-resolution errors into
// handler and keeps going rather than aborting (spec.md §4.4, "Error
// accumulation"), and returns every extern FuncEntry it registered in
// discovery order for codegen.Context.FnProtos.
func Analyze(types *TypeTable, table *imports.Table, global map[string]*imports.FuncEntry, names *intern.Table, handler *report.Handler) []*imports.FuncEntry {
	var discovered []*imports.FuncEntry

	for _, entry := range table.Entries() {
		for _, item := range entry.Root.Items {
			extern, ok := item.(*ast.ExternBlock)
			if !ok {
				continue
			}
			for _, proto := range extern.Protos {
				fe := analyzeProto(types, entry, proto, names, handler)
				entry.Funcs[proto.Name] = fe
				if proto.Visibility == ast.Public {
					global[proto.Name] = fe
				}
				discovered = append(discovered, fe)
			}
		}
	}

	return discovered
}

func analyzeProto(types *TypeTable, entry *imports.Entry, proto *ast.FnProto, names *intern.Table, handler *report.Handler) *imports.FuncEntry {
	names.Intern(proto.Name)
	for _, param := range proto.Params {
		names.Intern(param.Name)
		resolved := resolveType(types, entry.File, param.Ty, handler)
		// spec.md §4.4, "Void parameter rule": only diagnosed in pub
		// prototypes; private ones are deliberately left to the later
		// definition pass.
		if resolved.Name == Void && proto.Visibility == ast.Public {
			handler.Report(report.Errorf(entry.File, param.Sp, "void parameter %q is not allowed in a public prototype", param.Name))
		}
	}
	resolveType(types, entry.File, proto.RetTy, handler)

	return &imports.FuncEntry{
		Proto:    proto,
		IsExtern: true,
		CallConv: imports.CCallConv,
		Owner:    entry,
	}
}

// resolveType resolves ty against types, reporting any error into
// handler and returning the Invalid entry in its place rather than a
// nil *Entry, so callers never need a nil check (spec.md §4.4, "Type
// resolution").
func resolveType(types *TypeTable, file *source.File, ty ast.Ty, handler *report.Handler) *Entry {
	switch ty := ty.(type) {
	case *ast.PrimitiveTy:
		if e, ok := types.Primitive(ty.Name); ok {
			return e
		}
		handler.Report(report.Errorf(file, ty.Sp, "unknown type %q", ty.Name))
		e, _ := types.Primitive(Invalid)
		return e

	case *ast.PointerTy:
		child := resolveType(types, file, ty.Child, handler)
		return types.GetPointerToType(child, ty.IsConst)

	case *ast.ArrayTy:
		child := resolveType(types, file, ty.Child, handler)
		n, ok := arraySize(ty.Size)
		if !ok {
			handler.Report(report.Errorf(file, ty.Sp, "array size must be an integer literal"))
			invalid, _ := types.Primitive(Invalid)
			return invalid
		}
		return types.GetArrayType(child, n)

	default:
		handler.Report(report.Errorf(file, ty.Span(), "unresolvable type"))
		e, _ := types.Primitive(Invalid)
		return e
	}
}

func arraySize(e ast.Expr) (int64, bool) {
	lit, ok := e.(*ast.LitExpr)
	if !ok {
		return 0, false
	}
	intLit, ok := lit.Value.(*ast.IntLit)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(intLit.Raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
