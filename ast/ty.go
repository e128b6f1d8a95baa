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

package ast

import "github.com/dal-lang/dalc/source"

// Ty is implemented by *PrimitiveTy, *PointerTy, *ArrayTy (spec.md §3).
// It is the syntactic type grammar the parser produces; it is resolved
// against the type-interning table by the sema package, not here.
type Ty interface {
	Node
	tyNode()
}

// Primitives recognized by the type grammar (spec.md §3). Any other
// identifier is still parsed as a PrimitiveTy; the sema package's type
// resolution reports it as an unknown type.
const (
	Void  = "void"
	Bool  = "bool"
	U8    = "u8"
	I32   = "i32"
	ISize = "isize"
	F32   = "f32"
)

// PrimitiveTy is a bare type name.
type PrimitiveTy struct {
	Name string
	Sp   source.Span
}

func (t *PrimitiveTy) Span() source.Span { return t.Sp }
func (*PrimitiveTy) tyNode()             {}

// PointerTy is `*const T` or `*mut T`; mutability is always explicit in
// the grammar (spec.md §4.2, "Type grammar").
type PointerTy struct {
	Child   Ty
	IsConst bool
	Sp      source.Span
}

func (t *PointerTy) Span() source.Span { return t.Sp }
func (*PointerTy) tyNode()             {}

// ArrayTy is `[T; N]`; Size is parsed as a general expression, and
// semantic analysis requires it to reduce to a constant integer literal
// (spec.md §4.2, §4.4).
type ArrayTy struct {
	Child Ty
	Size  Expr
	Sp    source.Span
}

func (t *ArrayTy) Span() source.Span { return t.Sp }
func (*ArrayTy) tyNode()             {}
