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

// Package sema implements the semantic pre-analyzer (spec.md §4.4): type
// interning and resolution, and registration of extern prototypes in
// the per-import and global function tables.
package sema

import (
	"fmt"

	"github.com/dal-lang/dalc/llvmffi"
)

// Entry is one row of the type-interning table (spec.md §3,
// "Type-interning table"): a canonical name, its size and alignment,
// and the opaque handles a later codegen pass would hand off to LLVM.
type Entry struct {
	Name      string
	SizeBits  int
	AlignBits int
	LLVMType  llvmffi.TypeRef
	DebugType llvmffi.DebugType
}

// pointerTarget is the cache key for a pointer constructed over a given
// child, split by constness the way spec.md §3 describes
// ("pointer_const_parent / pointer_mut_parent").
type pointerTarget struct {
	child   *Entry
	isConst bool
}

type arrayTarget struct {
	child *Entry
	size  int64
}

// TypeTable is process-wide within a single compilation, owned by the
// codegen.Context (spec.md §3: "owned by the code-generation context").
// It is not safe for concurrent use; spec.md §5 guarantees the whole
// front-end is single-threaded.
type TypeTable struct {
	byName   map[string]*Entry
	pointers map[pointerTarget]*Entry
	arrays   map[arrayTarget]*Entry

	// PointerSizeBits is the target pointer width (spec.md §4.4,
	// "Pointer": "size and alignment equal to the target pointer width,
	// set from the LLVM data layout"). It is fixed at construction since
	// this module never reads an actual LLVM data layout.
	PointerSizeBits int
}

// primitive names recognized by the table (spec.md §3, "Ty variants").
const (
	Void  = "void"
	Bool  = "bool"
	U8    = "u8"
	I32   = "i32"
	ISize = "isize"
	F32   = "f32"

	// Invalid is the sentinel entry spec.md §3 lists alongside the real
	// primitives ("the invalid/void/bool/u8/i32/isize/f32 entries are
	// created once during initialization"). Its name cannot be spelled
	// as a dal identifier, so no source type resolves to it; resolveType
	// looks it up directly and returns it after reporting an error, so
	// callers never need a nil check.
	Invalid = "<invalid>"
)

// NewTypeTable creates a table with the invalid/void/bool/u8/i32/isize/
// f32 entries already interned, matching spec.md §3's initialization
// list. PointerSizeBits defaults to 64, matching every LLVM target the
// bundled standard library ships a bootstrap file for.
func NewTypeTable() *TypeTable {
	t := &TypeTable{
		byName:          make(map[string]*Entry),
		pointers:        make(map[pointerTarget]*Entry),
		arrays:          make(map[arrayTarget]*Entry),
		PointerSizeBits: 64,
	}
	t.internPrimitive(Invalid, 0, 0)
	t.internPrimitive(Void, 0, 0)
	t.internPrimitive(Bool, 8, 8)
	t.internPrimitive(U8, 8, 8)
	t.internPrimitive(I32, 32, 32)
	t.internPrimitive(ISize, t.PointerSizeBits, t.PointerSizeBits)
	t.internPrimitive(F32, 32, 32)
	return t
}

func (t *TypeTable) internPrimitive(name string, sizeBits, alignBits int) *Entry {
	e := &Entry{
		Name:      name,
		SizeBits:  sizeBits,
		AlignBits: alignBits,
		LLVMType:  llvmffi.NewTypeRef(),
		DebugType: llvmffi.NewDebugType(),
	}
	t.byName[name] = e
	return e
}

// Primitive looks up a primitive type by its bare name.
func (t *TypeTable) Primitive(name string) (*Entry, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// GetPointerToType returns the cached pointer entry over child with the
// given constness, constructing and caching one if this is the first
// request (spec.md §4.4, "Pointer"). Two calls with the same (child,
// isConst) always return the identical *Entry.
func (t *TypeTable) GetPointerToType(child *Entry, isConst bool) *Entry {
	key := pointerTarget{child: child, isConst: isConst}
	if e, ok := t.pointers[key]; ok {
		return e
	}
	e := &Entry{
		Name:      canonicalPointerName(child.Name, isConst),
		SizeBits:  t.PointerSizeBits,
		AlignBits: t.PointerSizeBits,
		LLVMType:  llvmffi.NewTypeRef(),
		DebugType: llvmffi.NewDebugType(),
	}
	t.pointers[key] = e
	t.byName[e.Name] = e
	return e
}

// GetArrayType returns the cached array entry over child with the given
// element count, constructing and caching one if this is the first
// request (spec.md §4.4, "Array"). Two calls with the same (child,
// size) always return the identical *Entry.
func (t *TypeTable) GetArrayType(child *Entry, size int64) *Entry {
	key := arrayTarget{child: child, size: size}
	if e, ok := t.arrays[key]; ok {
		return e
	}
	e := &Entry{
		Name:      canonicalArrayName(child.Name, size),
		SizeBits:  child.SizeBits * int(size),
		AlignBits: child.AlignBits,
		LLVMType:  llvmffi.NewTypeRef(),
		DebugType: llvmffi.NewDebugType(),
	}
	t.arrays[key] = e
	t.byName[e.Name] = e
	return e
}

func canonicalPointerName(childName string, isConst bool) string {
	if isConst {
		return fmt.Sprintf("*const %s", childName)
	}
	return fmt.Sprintf("*mut %s", childName)
}

func canonicalArrayName(childName string, size int64) string {
	return fmt.Sprintf("[%s; %d]", childName, size)
}
