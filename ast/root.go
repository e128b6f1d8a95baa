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

// Root is the result of parsing a single source file: an ordered list of
// top-level items.
type Root struct {
	Items []Item
	Sp    source.Span

	// Owner is set by the import resolver once the entry that owns this
	// Root has been inserted into the import table; it is the zero value
	// while the Root is being constructed by the parser.
	Owner OwnerID
}

func (r *Root) Span() source.Span { return r.Sp }

// FnDef is a function definition: a prototype plus a body.
type FnDef struct {
	Proto *FnProto
	Body  *Block
	Sp    source.Span
}

func (f *FnDef) Span() source.Span { return f.Sp }
func (*FnDef) itemNode()           {}

// FnProto is a function's signature, shared between FnDef.Proto and the
// prototypes declared inside an ExternBlock.
type FnProto struct {
	Visibility Visibility
	Name       string
	Params     []FnParam
	RetTy      Ty
	Sp         source.Span
}

func (p *FnProto) Span() source.Span { return p.Sp }

// FnParam is a single `name: ty` parameter.
type FnParam struct {
	Name string
	Ty   Ty
	Sp   source.Span
}

func (p FnParam) Span() source.Span { return p.Sp }

// ExternBlock is a sequence of function prototypes with no bodies.
type ExternBlock struct {
	Protos []*FnProto
	Sp     source.Span
}

func (e *ExternBlock) Span() source.Span { return e.Sp }
func (*ExternBlock) itemNode()           {}

// Import is a single `import "path"` item.
type Import struct {
	Path string
	Sp   source.Span
}

func (i *Import) Span() source.Span { return i.Sp }
func (*Import) itemNode()           {}
