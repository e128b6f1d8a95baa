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

// Package llvmffi stands in for the LLVM C-API binding the front-end
// links against (spec.md §1, "Out of scope": "the LLVM binding layer
// ... the core treats these as opaque tokens"). Nothing in this module
// constructs real LLVM types; the sema package only ever stores and
// compares the handles below, so they are plain Go values rather than
// cgo bindings.
package llvmffi

// TypeRef is an opaque handle to an LLVMTypeRef. The zero value
// represents "no type constructed yet", matching LLVM's own use of a
// null pointer for that state.
type TypeRef struct {
	id uint64
}

// Builder is an opaque handle to an LLVMBuilderRef.
type Builder struct {
	id uint64
}

// DIBuilder is an opaque handle to an LLVMDIBuilderRef, the debug-info
// builder used to attach a DW_TAG entry to a type-interning table row.
type DIBuilder struct {
	id uint64
}

// DebugType is an opaque handle to the LLVMMetadataRef a DIBuilder
// produces for a single interned type (spec.md §3, "Type-interning
// table": "each entry stores ... the opaque debug-info handle").
type DebugType struct {
	id uint64
}

// Valid reports whether d refers to a constructed debug-info entry.
func (d DebugType) Valid() bool { return d.id != 0 }

// Valid reports whether t refers to a constructed type rather than the
// zero value.
func (t TypeRef) Valid() bool { return t.id != 0 }

// handleCounter hands out distinct ids so two calls to NewTypeRef never
// collide; it stands in for whatever pointer value the real LLVM C-API
// would return.
var handleCounter uint64

// NewTypeRef mints a fresh opaque TypeRef. A real binding would instead
// call into LLVMInt32TypeInContext, LLVMPointerType, and so on.
func NewTypeRef() TypeRef {
	handleCounter++
	return TypeRef{id: handleCounter}
}

// NewDIBuilder mints a fresh opaque DIBuilder handle.
func NewDIBuilder() DIBuilder {
	handleCounter++
	return DIBuilder{id: handleCounter}
}

// NewDebugType mints a fresh opaque DebugType handle, as if produced by
// a DIBuilder for one interned type.
func NewDebugType() DebugType {
	handleCounter++
	return DebugType{id: handleCounter}
}
